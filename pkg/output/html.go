package output

import (
	"fmt"
	"html"
	"os"
	"strings"
)

/*
HTML writes the grid as a standalone HTML document styled with a
monospace font, suitable for opening in a browser. The file at Path is
created or truncated on every Render.
*/
type HTML struct {
	Path string
	Font string
}

func NewHTML(path, fontFamily string) *HTML {
	return &HTML{Path: path, Font: fontFamily}
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head><title>ascii art</title></head>
<body style="background-color:white;">
<p style="white-space:pre; font-family:'%s'; font-size:8px; letter-spacing:1px; line-height:0.8; color:black;">
`

const htmlFooter = `</p>
</body>
</html>
`

func (h *HTML) Render(grid [][]rune) error {
	var b strings.Builder
	fmt.Fprintf(&b, htmlHeader, h.Font)
	for _, row := range grid {
		b.WriteString(html.EscapeString(string(row)))
		b.WriteString("<br>\n")
	}
	b.WriteString(htmlFooter)
	return os.WriteFile(h.Path, []byte(b.String()), 0o644)
}
