package imaging

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit non-premultiplied components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// For the checkerboard tones saturation is close to 0 and lightness is high,
// which makes HSL a quick way to eyeball what was removed.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// Tone is one colour removed by RemoveBackground together with how often it
// occurred.
type Tone struct {
	Hex        string    `json:"hex"`        // Hex format "#rrggbb" (no alpha)
	RGBA       RGBAColor `json:"rgba"`       // Original components before clearing
	HSL        HSLColor  `json:"hsl"`        // HSL representation
	Pixels     int       `json:"pixels"`     // Number of cleared pixels with this colour
	Percentage float64   `json:"percentage"` // Share of all cleared pixels (0-100)
}

// BackgroundTones returns the most common opaque colours cleared by a fill,
// most frequent first. Pixels that were already (nearly) transparent are not
// tones of the checkerboard and are skipped, but still count towards the
// percentage denominator.
//
// Parameters:
//   - res: Result of a RemoveBackground call. A nil result yields no tones.
//   - count: Maximum number of tones to return. Values <= 0 return all tones.
//
// Ties are ordered by hex value so output is stable across runs.
func BackgroundTones(res *FillResult, count int) []Tone {
	if res == nil || res.Cleared == 0 {
		return nil
	}

	tones := make([]Tone, 0, len(res.removed))
	for c, n := range res.removed {
		if c.A < TransparentAlphaMax {
			continue
		}
		col := colorful.Color{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}
		tones = append(tones, Tone{
			Hex:        col.Hex(),
			RGBA:       c,
			HSL:        toHSL(col),
			Pixels:     n,
			Percentage: math.Round(float64(n)/float64(res.Cleared)*1000) / 10,
		})
	}

	sort.Slice(tones, func(i, j int) bool {
		if tones[i].Pixels != tones[j].Pixels {
			return tones[i].Pixels > tones[j].Pixels
		}
		if tones[i].Hex != tones[j].Hex {
			return tones[i].Hex < tones[j].Hex
		}
		return tones[i].RGBA.A > tones[j].RGBA.A
	})

	if count > 0 && len(tones) > count {
		tones = tones[:count]
	}
	return tones
}

// toHSL converts a colorful.Color into integer HSL components.
func toHSL(c colorful.Color) HSLColor {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
