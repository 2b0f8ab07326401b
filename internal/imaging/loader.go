package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ErrDecode is wrapped by Load when the file exists but is not a decodable image.
var ErrDecode = errors.New("decode image")

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// SourceModel names the decoded pixel type before normalisation,
	// e.g. "nrgba", "rgba", "paletted", "gray", "nrgba64".
	SourceModel string `json:"source_model"`

	// HasAlpha indicates whether the source carried an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Load reads the image at path and returns it as a non-premultiplied RGBA
// grid whose bounds start at (0,0), along with metadata about the source.
//
// # Errors
//
//   - If the file cannot be opened the os error is wrapped, so
//     errors.Is(err, fs.ErrNotExist) identifies a missing file.
//   - If the contents cannot be decoded the error wraps ErrDecode.
func Load(path string) (*image.NRGBA, *ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}

	model, hasAlpha := describeModel(src)
	img := imaging.Clone(src)
	bounds := img.Bounds()

	return img, &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		SourceModel:   model,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

func describeModel(img image.Image) (string, bool) {
	switch src := img.(type) {
	case *image.NRGBA:
		return "nrgba", true
	case *image.RGBA:
		return "rgba", true
	case *image.NRGBA64:
		return "nrgba64", true
	case *image.RGBA64:
		return "rgba64", true
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return "paletted", true
			}
		}
		return "paletted", false
	case *image.Gray:
		return "gray", false
	case *image.Gray16:
		return "gray16", false
	default:
		return "other", true
	}
}
