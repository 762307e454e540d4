package asciigrid

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultResolution is the number of characters per output row a new
	// Converter starts with.
	DefaultResolution = 2
	// MinCharsetSize is the smallest character set a conversion accepts;
	// below it brightness normalization is meaningless.
	MinCharsetSize = 2
)

/*
Converter owns the run-scoped configuration of the conversion pipeline
(character set, resolution, rounding method) and the two caches that make
repeated runs cheap: the raw per-character brightness cache, which
survives character set edits, and the sub-image brightness cache, which
survives character set and rounding edits but is dropped when a different
image is converted. Converting the same image twice with the same
configuration produces an identical grid.

A Converter is safe to reuse across runs but not for concurrent Convert
calls; the parallelism is internal to each run.
*/
type Converter struct {
	charset    *Charset
	resolution int
	round      RoundMethod
	face       font.Face
	workers    int

	glyphs   *glyphRenderer
	table    *CharTable
	tableGen uint64

	mu     sync.Mutex
	src    *Image
	padded *Image
	bright map[brightnessKey]float64
}

// New builds a Converter with the default configuration (digits charset,
// resolution 2, nearest-absolute rounding) modified by opts.
func New(opts ...Option) *Converter {
	c := &Converter{
		charset:    DefaultCharset(),
		resolution: DefaultResolution,
		round:      RoundNearest,
		workers:    runtime.NumCPU(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	c.glyphs = newGlyphRenderer(c.face)
	c.bright = make(map[brightnessKey]float64)
	return c
}

// Charset returns the converter's character set. Mutating it takes
// effect on the next Convert.
func (c *Converter) Charset() *Charset { return c.charset }

func (c *Converter) Resolution() int { return c.resolution }

func (c *Converter) SetResolution(n int) { c.resolution = n }

func (c *Converter) Round() RoundMethod { return c.round }

func (c *Converter) SetRound(m RoundMethod) { c.round = m }

/*
Convert runs the full pipeline on img: pad to power-of-two dimensions,
partition into square sub-images at the current resolution, measure each
sub-image's brightness and match it to a character. The result is
row-major, one character per sub-image. Configuration problems are
reported as ConfigError before any pixel work; no partial grid is ever
returned.
*/
func (c *Converter) Convert(img *Image) ([][]rune, error) {
	if n := c.charset.Len(); n < MinCharsetSize {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("charset has %d characters, minimum is %d", n, MinCharsetSize),
		}
	}
	if !c.round.valid() {
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported rounding method %s", c.round)}
	}

	c.mu.Lock()
	if img != c.src {
		c.src = img
		c.padded = img.Pad()
		c.bright = make(map[brightnessKey]float64)
	}
	padded := c.padded
	c.mu.Unlock()

	grid, err := Partition(padded, c.resolution)
	if err != nil {
		return nil, err
	}

	bright, err := c.brightnessGrid(grid)
	if err != nil {
		return nil, err
	}

	table := c.charTable()
	out := make([][]rune, len(grid))
	for r := range grid {
		out[r] = make([]rune, len(grid[r]))
		for col := range grid[r] {
			ch, err := table.Match(bright[r][col], c.round)
			if err != nil {
				return nil, err
			}
			out[r][col] = ch
		}
	}
	return out, nil
}

// ConvertFile decodes the image at path and converts it. Decode failures
// are returned as ImageError.
func (c *Converter) ConvertFile(path string) ([][]rune, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(img)
}

// charTable returns the normalized table for the current charset,
// rebuilding it only when the charset generation moved.
func (c *Converter) charTable() *CharTable {
	if gen := c.charset.generation(); c.table == nil || gen != c.tableGen {
		c.table = newCharTable(c.charset, c.glyphs)
		c.tableGen = gen
	}
	return c.table
}

// brightnessGrid measures every sub-image, one worker per row up to the
// configured limit. Workers write disjoint slots of a preallocated grid,
// so the result is identical regardless of scheduling order. Measuring a
// well-formed sub-image cannot fail today, but a worker error would
// surface here rather than vanish.
func (c *Converter) brightnessGrid(grid [][]SubImage) ([][]float64, error) {
	vals := make([][]float64, len(grid))
	for r := range grid {
		vals[r] = make([]float64, len(grid[r]))
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for r := range grid {
		r := r
		g.Go(func() error {
			for col := range grid[r] {
				vals[r][col] = c.subImageBrightness(grid[r][col])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vals, nil
}

func (c *Converter) subImageBrightness(s SubImage) float64 {
	key := brightnessKey{resolution: c.resolution, row: s.Row, col: s.Col}
	c.mu.Lock()
	if b, ok := c.bright[key]; ok {
		c.mu.Unlock()
		return b
	}
	c.mu.Unlock()

	b := s.Brightness()

	c.mu.Lock()
	c.bright[key] = b
	c.mu.Unlock()
	return b
}
