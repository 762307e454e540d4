package output

import (
	"io"
	"strings"
)

// Console writes the grid as plain text rows, one line per grid row.
type Console struct {
	W io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

func (c *Console) Render(grid [][]rune) error {
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(c.W, b.String())
	return err
}
