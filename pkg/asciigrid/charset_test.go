package asciigrid

import "testing"

func TestDefaultCharset(t *testing.T) {
	s := DefaultCharset()
	if s.Len() != 10 {
		t.Fatalf("Len = %d, want 10", s.Len())
	}
	if !s.Contains('0') || !s.Contains('9') {
		t.Error("default charset should contain '0'..'9'")
	}
	if got := string(s.Runes()); got != "0123456789" {
		t.Errorf("Runes = %q, want sorted digits", got)
	}
}

func TestCharsetAddRemove(t *testing.T) {
	s := NewCharset()
	if err := s.Add('a'); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !s.Contains('a') || s.Len() != 1 {
		t.Error("'a' should be in the set")
	}
	s.Remove('a')
	if s.Contains('a') || s.Len() != 0 {
		t.Error("'a' should have been removed")
	}
	// Removing an absent character is a no-op.
	s.Remove('z')
}

func TestCharsetRejectsNonPrintable(t *testing.T) {
	s := NewCharset()
	if err := s.Add('\n'); err == nil {
		t.Error("Add('\\n') should fail")
	}
	if err := s.Add(rune(127)); err == nil {
		t.Error("Add(DEL) should fail")
	}
	if err := s.AddRange('a', rune(200)); err == nil {
		t.Error("AddRange beyond ASCII should fail")
	}
}

func TestCharsetAddRangeEitherOrder(t *testing.T) {
	fwd := NewCharset()
	if err := fwd.AddRange('a', 'g'); err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	rev := NewCharset()
	if err := rev.AddRange('g', 'a'); err != nil {
		t.Fatalf("AddRange reversed: %v", err)
	}
	if string(fwd.Runes()) != "abcdefg" || string(rev.Runes()) != "abcdefg" {
		t.Errorf("ranges differ: %q vs %q", string(fwd.Runes()), string(rev.Runes()))
	}
}

func TestCharsetAddAllRemoveAll(t *testing.T) {
	s := NewCharset()
	s.AddAll()
	if want := int(LastPrintable-FirstPrintable) + 1; s.Len() != want {
		t.Errorf("Len after AddAll = %d, want %d", s.Len(), want)
	}
	s.RemoveAll()
	if s.Len() != 0 {
		t.Errorf("Len after RemoveAll = %d, want 0", s.Len())
	}
}

func TestCharsetGeneration(t *testing.T) {
	s := NewCharset('a')
	gen := s.generation()

	s.Add('a') // already present
	if s.generation() != gen {
		t.Error("no-op Add should not bump generation")
	}
	s.Add('b')
	if s.generation() == gen {
		t.Error("Add of new char should bump generation")
	}

	gen = s.generation()
	s.Remove('z') // absent
	if s.generation() != gen {
		t.Error("no-op Remove should not bump generation")
	}
	s.Remove('a')
	if s.generation() == gen {
		t.Error("Remove of present char should bump generation")
	}
}
