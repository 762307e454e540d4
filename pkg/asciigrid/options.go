package asciigrid

import "golang.org/x/image/font"

// Option configures a Converter at construction time.
type Option func(*Converter)

// WithCharset replaces the default digit charset. The converter takes
// ownership; mutate it through Converter.Charset afterwards.
func WithCharset(set *Charset) Option {
	return func(c *Converter) {
		c.charset = set
	}
}

// WithResolution sets the number of characters per output row.
func WithResolution(n int) Option {
	return func(c *Converter) {
		c.resolution = n
	}
}

// WithRoundMethod sets the tie-break policy used when a sub-image's
// brightness falls between two characters.
func WithRoundMethod(m RoundMethod) Option {
	return func(c *Converter) {
		c.round = m
	}
}

/*
WithFontFace sets the face characters are rasterized with when measuring
their brightness. The default is a built-in bitmap face that needs no
font file and always renders the same character to the same brightness;
pass a face from LoadFontFace to measure against a real font instead.
*/
func WithFontFace(face font.Face) Option {
	return func(c *Converter) {
		c.face = face
	}
}

// WithWorkers bounds the number of goroutines measuring sub-image
// brightness in parallel. Values below 1 fall back to a single worker;
// the default is the number of CPUs.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}
