package imaging

import (
	"image/color"
)

// Thresholds for the checkerboard background. The two tones of the pattern
// are a near-white and a light gray, so a pixel counts as background when it
// is bright on every channel and close to neutral.
const (
	// TransparentAlphaMax is the exclusive alpha ceiling below which a pixel is
	// treated as background regardless of its colour.
	TransparentAlphaMax = 10

	// BackgroundChannelMin is the exclusive floor each of R, G and B must exceed.
	BackgroundChannelMin = 190

	// BackgroundChannelSpread is the exclusive limit on |R-G| and |G-B|.
	BackgroundChannelSpread = 15
)

// IsBackground reports whether a pixel with the given 8-bit non-premultiplied
// channels belongs to the checkerboard background.
func IsBackground(r, g, b, a uint8) bool {
	if a < TransparentAlphaMax {
		return true
	}
	if r <= BackgroundChannelMin || g <= BackgroundChannelMin || b <= BackgroundChannelMin {
		return false
	}
	return absDiff(r, g) < BackgroundChannelSpread && absDiff(g, b) < BackgroundChannelSpread
}

// IsBackgroundColor applies IsBackground to an arbitrary colour after
// converting it to non-premultiplied 8-bit RGBA.
func IsBackgroundColor(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return IsBackground(n.R, n.G, n.B, n.A)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
