package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	h := NewHTML(path, "Courier New")

	grid := [][]rune{
		{'<', '@', '>'},
		{' ', '.', ' '},
	}
	if err := h.Render(grid); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)

	for _, want := range []string{"Courier New", "&lt;@&gt;<br>", "white-space:pre", "</html>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestHTMLRenderOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	h := NewHTML(path, "monospace")

	if err := h.Render([][]rune{{'a'}}); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if err := h.Render([][]rune{{'b'}}); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "a<br>") {
		t.Error("second Render should have replaced the first document")
	}
}
