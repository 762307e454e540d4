package output

import (
	"bytes"
	"testing"
)

func TestConsoleRender(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	grid := [][]rune{
		{'a', 'b', 'c'},
		{'d', 'e', 'f'},
	}
	if err := c.Render(grid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), "abc\ndef\n"; got != want {
		t.Errorf("Render wrote %q, want %q", got, want)
	}
}

func TestConsoleRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsole(&buf).Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render of empty grid wrote %q", buf.String())
	}
}
