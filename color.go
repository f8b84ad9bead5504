package cvpdf

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a color string that is not #rgb or #rrggbb.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Named colors used by the default style sheet.
var (
	Black = Color{}
	Gray  = Color{R: 128, G: 128, B: 128}
)

// ParseColor parses a hex color such as "#0B7A75".
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
