package pdf

import (
	"time"

	"github.com/spf13/afero"

	"pkt.systems/cvpdf"
)

// Config holds PDF layout settings. Lengths are in points.
type Config struct {
	PageSize string
	Margin   float64
	// Fonts maps a font name used in styles to a TTF file in FS.
	Fonts map[string]string
	// FS is where font files are read from. Nil means the OS filesystem.
	FS                 afero.Fs
	DisableCompression bool
	// CreationDate is written as both creation and modification date. The
	// zero value means ReproducibleEpoch.
	CreationDate time.Time
	Creator      string
}

// ReproducibleEpoch is the metadata date used unless Config.CreationDate is
// set, so that identical input yields identical bytes.
var ReproducibleEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: "A4",
		Margin:   cvpdf.MM(18),
		Creator:  "cvpdf",
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if len(src.Fonts) > 0 {
		dst.Fonts = src.Fonts
	}
	if src.FS != nil {
		dst.FS = src.FS
	}
	if src.DisableCompression {
		dst.DisableCompression = true
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
}
