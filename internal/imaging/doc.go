// Package imaging implements checkerboard background removal for logo images.
//
// The package loads an image into a non-premultiplied RGBA grid, clears the
// background that is connected to the image border, and writes the result
// back out as PNG. All coordinates are 0-based with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward.
//
// # Background Detection
//
// A pixel is background when it is nearly transparent (alpha < 10) or when it
// is a bright near-neutral colour: every channel above 190, with red and
// green, and green and blue, each within 15 of one another. These values match
// the white and light-gray squares of a typical transparency checkerboard and
// are fixed.
//
// # Flood Fill
//
// RemoveBackground seeds a FIFO queue with every border pixel and expands
// through 4-connected background neighbours. Light areas inside the logo that
// are fenced off by non-background pixels are therefore preserved.
//
// # Thread Safety
//
// Functions are stateless. RemoveBackground mutates the image it is given;
// callers must not share that image with other goroutines during the call.
//
// # Error Handling
//
// Load wraps the os error for unreadable files and ErrDecode for undecodable
// ones. Save wraps ErrEncode together with the path that failed.
package imaging
