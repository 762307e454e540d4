package asciigrid

import (
	"errors"
	"testing"
)

func TestPartitionCoverage(t *testing.T) {
	img := solidImage(8, 4, white)
	grid, err := Partition(img, 4)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("got %d rows, want 2", len(grid))
	}

	covered := make([][]bool, img.Height())
	for y := range covered {
		covered[y] = make([]bool, img.Width())
	}
	for r, row := range grid {
		if len(row) != 4 {
			t.Fatalf("row %d has %d sub-images, want 4", r, len(row))
		}
		for _, s := range row {
			if s.Side != 2 {
				t.Errorf("sub-image (%d,%d) side %d, want 2", s.Row, s.Col, s.Side)
			}
			for y := s.y0; y < s.y0+s.Side; y++ {
				for x := s.x0; x < s.x0+s.Side; x++ {
					if covered[y][x] {
						t.Fatalf("pixel (%d,%d) covered twice", x, y)
					}
					covered[y][x] = true
				}
			}
		}
	}
	for y := range covered {
		for x := range covered[y] {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered", x, y)
			}
		}
	}
}

func TestPartitionResolutionBounds(t *testing.T) {
	img := solidImage(8, 8, white)
	for _, res := range []int{0, -1, 9, 100} {
		_, err := Partition(img, res)
		var cfg *ConfigError
		if !errors.As(err, &cfg) {
			t.Errorf("Partition(res=%d) err = %v, want ConfigError", res, err)
		}
	}
}

func TestPartitionNonDivisorResolution(t *testing.T) {
	img := solidImage(8, 8, white)
	_, err := Partition(img, 3)
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("Partition(res=3) err = %v, want InvariantError", err)
	}
}

func TestResolutionRoundTrip(t *testing.T) {
	img := solidImage(16, 8, white)

	before, err := Partition(img, 4)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if _, err := Partition(img, 8); err != nil {
		t.Fatalf("Partition after doubling: %v", err)
	}
	after, err := Partition(img, 4)
	if err != nil {
		t.Fatalf("Partition after halving: %v", err)
	}

	if before[0][0].Side != after[0][0].Side {
		t.Errorf("side changed across round-trip: %d != %d", before[0][0].Side, after[0][0].Side)
	}
	if len(before) != len(after) || len(before[0]) != len(after[0]) {
		t.Errorf("grid shape changed across round-trip")
	}
}
