/*
Package asciigrid converts a raster image into a grid of text characters
whose visual density approximates the image's brightness pattern.

The pipeline pads the source image to power-of-two dimensions, partitions
it into square sub-images, measures the average luminance of each
sub-image and matches it against the rendered brightness of the active
character set. The number of characters per output row is controlled by
the resolution; the tie-break between candidate characters is controlled
by the rounding method.

Basic usage:

	conv := asciigrid.New(
		asciigrid.WithCharset(asciigrid.NewCharset('.', ':', '@')),
		asciigrid.WithResolution(64),
	)
	grid, err := conv.ConvertFile("gopher.png")

The returned grid is row-major: grid[row][col] is the character for the
sub-image in that position. Rendering the grid to a terminal or a file is
left to the caller (see the output package).
*/
package asciigrid
