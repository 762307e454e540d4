/*
Package output renders finished character grids. The conversion core
knows nothing about presentation; anything that can consume a row-major
[][]rune can implement Renderer.
*/
package output

// Renderer displays or persists a character grid.
type Renderer interface {
	Render(grid [][]rune) error
}
