package asciigrid

import "fmt"

/*
SubImage is a square view into a padded image, identified by its grid
position and side length. It is an offset into the backing pixel buffer,
not a copy; SubImages stay valid as long as the image they point into.
*/
type SubImage struct {
	img  *Image
	Row  int
	Col  int
	Side int

	x0, y0 int
}

/*
Partition divides img into resolution columns of square sub-images with
side img.Width()/resolution, covering the image exactly with no overlap.
A resolution outside [1, img.Width()] is a ConfigError. A resolution in
range that does not divide the image evenly is an InvariantError: images
that went through Pad have power-of-two dimensions, so any power-of-two
resolution up to the width divides both axes.
*/
func Partition(img *Image, resolution int) ([][]SubImage, error) {
	w, h := img.Width(), img.Height()
	if resolution < 1 || resolution > w {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("resolution %d outside valid range [1, %d]", resolution, w),
		}
	}
	if w%resolution != 0 {
		return nil, &InvariantError{
			Reason: fmt.Sprintf("resolution %d does not divide image width %d", resolution, w),
		}
	}
	side := w / resolution
	if h%side != 0 {
		return nil, &InvariantError{
			Reason: fmt.Sprintf("sub-image side %d does not divide image height %d", side, h),
		}
	}

	rows := h / side
	grid := make([][]SubImage, rows)
	for r := range grid {
		grid[r] = make([]SubImage, resolution)
		for c := range grid[r] {
			grid[r][c] = SubImage{
				img:  img,
				Row:  r,
				Col:  c,
				Side: side,
				x0:   c * side,
				y0:   r * side,
			}
		}
	}
	return grid, nil
}
