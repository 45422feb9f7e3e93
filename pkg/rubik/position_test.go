package rubik

import (
	"errors"
	"testing"
)

func TestPositionRoundTrip(t *testing.T) {
	seen := make(map[CubePosition]bool)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				p, err := NewPosition(x, y, z)
				if err != nil {
					t.Fatalf("NewPosition(%d,%d,%d): %v", x, y, z, err)
				}
				if seen[p] {
					t.Fatalf("position %d encoded twice", p)
				}
				seen[p] = true

				gx, gy, gz := p.Coords()
				if gx != x || gy != y || gz != z {
					t.Errorf("decode(encode(%d,%d,%d)) = (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
	if len(seen) != NumPositions {
		t.Errorf("encoded %d positions, want %d", len(seen), NumPositions)
	}
}

func TestPositionEncodingLayout(t *testing.T) {
	tests := []struct {
		x, y, z int
		want    uint8
		name    string
	}{
		{0, 2, 2, 0, "UFL"},
		{2, 2, 2, 2, "UFR"},
		{1, 1, 1, 13, "C"},
		{2, 0, 2, 20, "DFR"},
		{2, 0, 0, 26, "DBR"},
		{1, 2, 1, 4, "U"},
		{0, 1, 2, 9, "FL"},
	}
	for _, tt := range tests {
		p, err := NewPosition(tt.x, tt.y, tt.z)
		if err != nil {
			t.Fatal(err)
		}
		if uint8(p) != tt.want {
			t.Errorf("NewPosition(%d,%d,%d) = %d, want %d", tt.x, tt.y, tt.z, p, tt.want)
		}
		if p.Name() != tt.name {
			t.Errorf("position %d name = %q, want %q", p, p.Name(), tt.name)
		}
	}
}

func TestPositionNamesUnique(t *testing.T) {
	names := make(map[string]CubePosition)
	for _, p := range AllPositions() {
		if other, ok := names[p.Name()]; ok {
			t.Errorf("positions %d and %d share name %q", other, p, p.Name())
		}
		names[p.Name()] = p
	}
}

func TestPositionFromUint8(t *testing.T) {
	for v := uint8(0); v < NumPositions; v++ {
		if _, err := PositionFromUint8(v); err != nil {
			t.Errorf("PositionFromUint8(%d): %v", v, err)
		}
	}
	if _, err := PositionFromUint8(27); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("PositionFromUint8(27) error = %v, want ErrInvalidPosition", err)
	}
	if _, err := NewPosition(3, 0, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("NewPosition(3,0,0) error = %v, want ErrInvalidPosition", err)
	}
}

func TestMustPositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPosition(200) should panic")
		}
	}()
	MustPosition(200)
}

func TestCoordsPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Coords on an invalid position should panic")
		}
	}()
	CubePosition(27).Coords()
}
