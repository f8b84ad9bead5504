package cvpdf

import "time"

// AssembleOption configures document assembly.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	qrCode      []byte
	qrLink      string
	headshot    *Headshot
	generatedAt time.Time
	imageSize   float64
	margin      float64
	copyright   string
	generator   string
}

func defaultAssembleConfig() assembleConfig {
	return assembleConfig{
		imageSize: MM(28),
		margin:    MM(18),
		generator: DefaultGenerator,
	}
}

// WithQRCode places the PNG-encoded QR code in the header. A non-empty
// target makes the code clickable.
func WithQRCode(png []byte, target string) AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.qrCode = png
		cfg.qrLink = target
	}
}

// WithHeadshot places the headshot beneath the QR code. A nil headshot is
// ignored.
func WithHeadshot(h *Headshot) AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.headshot = h
	}
}

// WithGeneratedAt sets the date printed in the page footer.
func WithGeneratedAt(t time.Time) AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.generatedAt = t
	}
}

// WithImageSize sets the edge length of the header images in points.
func WithImageSize(size float64) AssembleOption {
	return func(cfg *assembleConfig) {
		if size > 0 {
			cfg.imageSize = size
		}
	}
}

// WithMargin sets the horizontal inset of the page footer labels.
func WithMargin(margin float64) AssembleOption {
	return func(cfg *assembleConfig) {
		if margin > 0 {
			cfg.margin = margin
		}
	}
}

// WithCopyright overrides the copyright holder; the default is the CV name.
func WithCopyright(holder string) AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.copyright = holder
	}
}

// WithGenerator sets the tool name shown in the footer labels.
func WithGenerator(name string) AssembleOption {
	return func(cfg *assembleConfig) {
		if name != "" {
			cfg.generator = name
		}
	}
}
