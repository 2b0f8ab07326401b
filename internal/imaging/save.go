package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrEncode is wrapped by Save when an output cannot be written.
var ErrEncode = errors.New("encode image")

// Save writes img as PNG to every path, in order. Existing files are
// overwritten. Writing stops at the first failure; files written before it
// are left in place.
func Save(img image.Image, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no output paths", ErrEncode)
	}
	for _, p := range paths {
		if err := imgio.Save(p, img, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("%w %s: %w", ErrEncode, p, err)
		}
	}
	return nil
}
