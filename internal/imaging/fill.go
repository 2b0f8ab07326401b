package imaging

import (
	"image"
)

// FillResult summarises one RemoveBackground pass.
type FillResult struct {
	// Width and Height of the processed image in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Visited is the number of distinct pixels classified. Never exceeds Width*Height.
	Visited int `json:"visited"`

	// Cleared is the number of pixels set to transparent black.
	Cleared int `json:"cleared"`

	// removed counts cleared pixels by their colour before clearing.
	removed map[RGBAColor]int
}

// RemoveBackground clears the checkerboard background that is connected to
// the image border, mutating img in place.
//
// Every border pixel seeds a FIFO work queue. Each dequeued pixel is
// classified once with IsBackground; background pixels become (0,0,0,0) and
// their 4-connected neighbours are queued. Background-coloured regions that
// are not reachable from the border (for example a light area enclosed by an
// outline) are left untouched.
//
// Coordinates are relative to img.Bounds().Min, so sub-images work as well.
func RemoveBackground(img *image.NRGBA) *FillResult {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	res := &FillResult{
		Width:   width,
		Height:  height,
		removed: make(map[RGBAColor]int),
	}
	if width <= 0 || height <= 0 {
		return res
	}

	visited := make([]bool, width*height)
	queue := make([]int, 0, 2*(width+height))

	// Corners land in the queue twice; the visited check drops the repeat.
	for x := 0; x < width; x++ {
		queue = append(queue, x, (height-1)*width+x)
	}
	for y := 0; y < height; y++ {
		queue = append(queue, y*width, y*width+width-1)
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		if visited[idx] {
			continue
		}
		visited[idx] = true
		res.Visited++

		x, y := idx%width, idx/width
		off := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
		px := img.Pix[off : off+4 : off+4]
		if !IsBackground(px[0], px[1], px[2], px[3]) {
			continue
		}

		res.removed[RGBAColor{R: px[0], G: px[1], B: px[2], A: px[3]}]++
		res.Cleared++
		px[0], px[1], px[2], px[3] = 0, 0, 0, 0

		if x > 0 && !visited[idx-1] {
			queue = append(queue, idx-1)
		}
		if x < width-1 && !visited[idx+1] {
			queue = append(queue, idx+1)
		}
		if y > 0 && !visited[idx-width] {
			queue = append(queue, idx-width)
		}
		if y < height-1 && !visited[idx+width] {
			queue = append(queue, idx+width)
		}
	}

	return res
}
