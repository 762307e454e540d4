package asciigrid

// Rec. 709 luma weights as scaled integers (2126/7152/722 over 10000).
// Integer weighting keeps the per-pixel sum exact, so solid white
// measures exactly 1 and solid black exactly 0; the weights are held
// constant so the same image always measures the same brightness.
const (
	lumR     = 2126
	lumG     = 7152
	lumB     = 722
	lumScale = lumR + lumG + lumB // 10000
)

/*
Brightness returns the average normalized gray level of the sub-image in
[0,1]. Each pixel's gray level is the weighted channel sum
(2126 R + 7152 G + 722 B) / 10000, averaged over the sub-image and
divided by the maximum channel value. Pixels are treated as opaque.
*/
func (s SubImage) Brightness() float64 {
	var sum uint64
	for y := s.y0; y < s.y0+s.Side; y++ {
		for x := s.x0; x < s.x0+s.Side; x++ {
			px := s.img.at(x, y)
			sum += lumR*uint64(px.R) + lumG*uint64(px.G) + lumB*uint64(px.B)
		}
	}
	return float64(sum) / (float64(s.Side*s.Side) * lumScale * 255)
}

// brightnessKey identifies one cached sub-image measurement. The image
// identity is tracked separately by the converter, which drops the whole
// cache when the image changes.
type brightnessKey struct {
	resolution int
	row, col   int
}
