package asciigrid

import (
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

/*
Image is an immutable pixel grid backed by an NRGBA buffer. All
transformations return new images; an Image is never mutated after
construction, so it is safe to share between conversions and goroutines.
*/
type Image struct {
	pix *image.NRGBA
}

// FromImage copies src into a new Image, normalizing whatever color model
// the decoder produced to NRGBA anchored at the origin.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return &Image{pix: dst}
}

/*
Decode reads an image from r. Supported formats are png, jpeg, gif, bmp
and webp; additional formats can be enabled by blank-importing their
decoder packages before calling Decode, as with image.Decode.
*/
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, &ImageError{Err: err}
	}
	return FromImage(src), nil
}

// Load decodes the image file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	return FromImage(src), nil
}

func (m *Image) Width() int  { return m.pix.Rect.Dx() }
func (m *Image) Height() int { return m.pix.Rect.Dy() }

func (m *Image) at(x, y int) color.NRGBA {
	return m.pix.NRGBAAt(x, y)
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

/*
Pad returns an image whose width and height are each the smallest power
of two >= the source dimension, filled white with the source centered.
When the padding amount on an axis is odd, the extra pixel goes on the
trailing (right or bottom) edge. An image whose dimensions are already
powers of two is returned as is.
*/
func (m *Image) Pad() *Image {
	w, h := m.Width(), m.Height()
	pw, ph := NextPowerOfTwo(w), NextPowerOfTwo(h)
	if pw == w && ph == h {
		return m
	}

	dst := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(white), image.Point{}, xdraw.Src)

	// Leading edge gets the floor of the excess, trailing edge the rest.
	off := image.Pt((pw-w)/2, (ph-h)/2)
	xdraw.Copy(dst, off, m.pix, m.pix.Bounds(), xdraw.Src, nil)

	return &Image{pix: dst}
}
