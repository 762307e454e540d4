// Interactive command console for the asciigrid converter. The console
// owns the long-lived session configuration (character set, resolution,
// rounding method, output target) and enforces the bounds the core
// expects before each run; command errors are printed and the session
// continues.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"asciigrid/pkg/asciigrid"
	"asciigrid/pkg/output"

	"golang.org/x/image/font"
)

const prompt = ">>> "

// Shell drives one interactive session over a single image.
type Shell struct {
	conv      *asciigrid.Converter
	img       *asciigrid.Image
	imageName string

	// Resolution bounds derived from the padded image: at most one
	// character per pixel column, at least one character per row.
	minRes, maxRes int

	// nil means console output on the current Stdout; built per render
	// so reassigning Stdout redirects the default output too.
	renderer output.Renderer

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell loads the image at path and builds a session with the default
// configuration: digits charset, resolution 2, nearest-absolute rounding,
// console output.
func NewShell(path string, face font.Face) (*Shell, error) {
	img, err := asciigrid.Load(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return newShell(img, name, face), nil
}

func newShell(img *asciigrid.Image, name string, face font.Face) *Shell {
	s := &Shell{
		conv:      asciigrid.New(asciigrid.WithFontFace(face)),
		img:       img,
		imageName: name,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
	s.maxRes = asciigrid.NextPowerOfTwo(img.Width())
	s.minRes = max(1, s.maxRes/asciigrid.NextPowerOfTwo(img.Height()))
	return s
}

// Run reads commands until exit or EOF.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.Stdin)
	for {
		fmt.Fprint(s.Stdout, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "exit" {
			return nil
		}
		if err := s.execute(args); err != nil {
			fmt.Fprintln(s.Stderr, err)
		}
	}
}

func (s *Shell) execute(args []string) error {
	switch args[0] {
	case "chars":
		s.printChars()
		return nil
	case "add":
		return s.addChars(args)
	case "remove":
		return s.removeChars(args)
	case "res":
		return s.changeResolution(args)
	case "round":
		return s.changeRound(args)
	case "output":
		return s.changeOutput(args)
	case "asciiart":
		return s.runAlgorithm()
	}
	return errors.New("Did not execute due to incorrect command.")
}

func (s *Shell) printChars() {
	runes := s.conv.Charset().Runes()
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	fmt.Fprintln(s.Stdout, strings.Join(parts, " "))
}

// parseCharSpec interprets the add/remove argument forms: a single
// character, "all", "space", or a range like "a-g" (either order).
func parseCharSpec(spec string) (from, to rune, ok bool) {
	switch {
	case spec == "all":
		return asciigrid.FirstPrintable, asciigrid.LastPrintable, true
	case spec == "space":
		return ' ', ' ', true
	case len(spec) == 1:
		r := rune(spec[0])
		return r, r, true
	case len(spec) == 3 && spec[1] == '-':
		return rune(spec[0]), rune(spec[2]), true
	}
	return 0, 0, false
}

func (s *Shell) addChars(args []string) error {
	badFormat := errors.New("Did not add due to incorrect format.")
	if len(args) < 2 {
		return badFormat
	}
	from, to, ok := parseCharSpec(args[1])
	if !ok {
		return badFormat
	}
	if err := s.conv.Charset().AddRange(from, to); err != nil {
		return badFormat
	}
	return nil
}

func (s *Shell) removeChars(args []string) error {
	badFormat := errors.New("Did not remove due to incorrect format.")
	if len(args) < 2 {
		return badFormat
	}
	from, to, ok := parseCharSpec(args[1])
	if !ok {
		return badFormat
	}
	s.conv.Charset().RemoveRange(from, to)
	return nil
}

func (s *Shell) changeResolution(args []string) error {
	if len(args) < 2 {
		fmt.Fprintf(s.Stdout, "Resolution set to %d.\n", s.conv.Resolution())
		return nil
	}

	res := s.conv.Resolution()
	switch args[1] {
	case "up":
		if res*2 > s.maxRes {
			return errors.New("Did not change resolution due to exceeding boundaries.")
		}
		res *= 2
	case "down":
		if res/2 < s.minRes {
			return errors.New("Did not change resolution due to exceeding boundaries.")
		}
		res /= 2
	default:
		return errors.New("Did not change resolution due to incorrect format.")
	}

	s.conv.SetResolution(res)
	fmt.Fprintf(s.Stdout, "Resolution set to %d.\n", res)
	return nil
}

func (s *Shell) changeRound(args []string) error {
	if len(args) < 2 {
		return errors.New("Did not change rounding method due to incorrect format.")
	}
	switch args[1] {
	case "up":
		s.conv.SetRound(asciigrid.RoundUp)
	case "down":
		s.conv.SetRound(asciigrid.RoundDown)
	case "abs":
		s.conv.SetRound(asciigrid.RoundNearest)
	default:
		return errors.New("Did not change rounding method due to incorrect format.")
	}
	return nil
}

func (s *Shell) changeOutput(args []string) error {
	if len(args) < 2 {
		return errors.New("Did not change output method due to incorrect format.")
	}
	switch args[1] {
	case "console":
		s.renderer = nil
	case "html":
		s.renderer = output.NewHTML(s.imageName+".html", "Courier New")
	default:
		return errors.New("Did not change output method due to incorrect format.")
	}
	return nil
}

func (s *Shell) runAlgorithm() error {
	if s.conv.Charset().Len() < asciigrid.MinCharsetSize {
		return fmt.Errorf("Did not execute. Charset is too small. Minimum size is %d characters.",
			asciigrid.MinCharsetSize)
	}
	grid, err := s.conv.Convert(s.img)
	if err != nil {
		return err
	}
	return s.currentRenderer().Render(grid)
}

func (s *Shell) currentRenderer() output.Renderer {
	if s.renderer != nil {
		return s.renderer
	}
	return output.NewConsole(s.Stdout)
}
