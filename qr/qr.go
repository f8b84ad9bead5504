// Package qr renders URLs as QR code rasters for embedding in a PDF.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// Defaults match a print-friendly symbol: medium error correction, six
// pixels per module and a two-module quiet zone.
const (
	DefaultModuleSize = 6
	DefaultBorder     = 2
)

// Encoder converts text into a QR code image.
type Encoder struct {
	Level      qrcode.RecoveryLevel
	ModuleSize int
	Border     int
}

// DefaultEncoder returns an Encoder with the default settings.
func DefaultEncoder() Encoder {
	return Encoder{
		Level:      qrcode.Medium,
		ModuleSize: DefaultModuleSize,
		Border:     DefaultBorder,
	}
}

// Image encodes content into a black-on-white image with Border modules of
// quiet zone. The smallest symbol version that fits is chosen.
func (e Encoder) Image(content string) (image.Image, error) {
	code, err := qrcode.New(content, e.Level)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	code.DisableBorder = true

	module := e.ModuleSize
	if module <= 0 {
		module = DefaultModuleSize
	}
	border := max(e.Border, 0)
	// A negative size asks for module pixels per module.
	symbol := code.Image(-module)
	size := symbol.Bounds().Dx() + 2*border*module
	canvas := imaging.New(size, size, color.White)
	return imaging.Paste(canvas, symbol, image.Pt(border*module, border*module)), nil
}

// Encode returns content as a PNG-encoded QR code.
func (e Encoder) Encode(content string) ([]byte, error) {
	img, err := e.Image(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("qr encode: png: %w", err)
	}
	return buf.Bytes(), nil
}
