package imaging

import (
	"image/color"
	"testing"
)

func TestIsBackground(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       bool
	}{
		{"white", 255, 255, 255, 255, true},
		{"checker gray", 200, 200, 200, 255, true},
		{"near white tint", 250, 240, 245, 255, true},
		{"black", 0, 0, 0, 255, false},
		{"channel at floor", 190, 200, 200, 255, false},
		{"channel just above floor", 191, 191, 191, 255, true},
		{"blue at floor", 200, 200, 190, 255, false},
		{"red-green spread 15", 220, 205, 205, 255, false},
		{"red-green spread 14", 219, 205, 205, 255, true},
		{"green-blue spread 15", 205, 205, 220, 255, false},
		{"green-blue spread 14", 205, 205, 219, 255, true},
		{"red-blue spread ignored", 191, 205, 218, 255, true},
		{"pale yellow", 255, 255, 200, 255, false},
		{"alpha 9 black", 0, 0, 0, 9, true},
		{"alpha 0 red", 255, 0, 0, 0, true},
		{"alpha 10 black", 0, 0, 0, 10, false},
		{"alpha 10 white", 255, 255, 255, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBackground(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("IsBackground(%d,%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIsBackground_LowAlphaAlwaysBackground(t *testing.T) {
	for a := 0; a < TransparentAlphaMax; a++ {
		for v := 0; v < 256; v += 17 {
			c := uint8(v)
			if !IsBackground(c, 255-c, c/2, uint8(a)) {
				t.Fatalf("alpha %d with colour (%d,%d,%d) should be background", a, c, 255-c, c/2)
			}
		}
	}
}

func TestIsBackgroundColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want bool
	}{
		{"nrgba white", color.NRGBA{255, 255, 255, 255}, true},
		{"nrgba black", color.NRGBA{0, 0, 0, 255}, false},
		{"rgba gray", color.RGBA{200, 200, 200, 255}, true},
		{"gray16 light", color.Gray16{0xF000}, true},
		{"gray dark", color.Gray{100}, false},
		{"transparent", color.Transparent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBackgroundColor(tt.c); got != tt.want {
				t.Errorf("IsBackgroundColor(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}
