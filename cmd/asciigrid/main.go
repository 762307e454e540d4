package main

import (
	"flag"
	"fmt"
	"os"

	"asciigrid/pkg/asciigrid"

	"golang.org/x/image/font"
)

const fontUsage = "Path to a TrueType font file to measure character brightness against.\n" +
	"By default a built-in bitmap face is used, which needs no font file."

func main() {
	fontPath := flag.String("font", "", fontUsage)
	fontSize := flag.Float64("font-size", 16, "Point size used with -font.")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: asciigrid [-font file.ttf] <image>")
		os.Exit(2)
	}

	var face font.Face
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read font: %v\n", err)
			os.Exit(1)
		}
		face, err = asciigrid.LoadFontFace(data, *fontSize)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	sh, err := NewShell(flag.Arg(0), face)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := sh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
