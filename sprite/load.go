package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ErrBadAspect is returned when a custom sheet image does not have the
// 20:3 aspect ratio of the sheet layout.
var ErrBadAspect = errors.New("sprite: sheet image must have 20:3 tile aspect")

// Load reads a custom sprite sheet from a PNG file and rescales it to the
// sheet dimensions. The image must follow the 20x3 tile layout; any size
// with the matching aspect ratio is accepted, so sheets can be authored at
// higher resolution.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: open sheet: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode sheet: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx()*Rows != bounds.Dy()*Columns {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadAspect, bounds.Dx(), bounds.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst, nil
}
