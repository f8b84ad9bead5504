package cvpdf

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// HeadshotPixels is the edge length a headshot is resampled to.
const HeadshotPixels = 512

// Headshot is a square portrait ready for embedding.
type Headshot struct {
	Data   []byte
	Format ImageFormat
}

// LoadHeadshot reads the image at path, center-crops it to a square and
// re-encodes it as JPEG. It returns nil without error when path is empty or
// does not name an existing regular file.
func LoadHeadshot(fsys afero.Fs, path string, pixels int) (*Headshot, error) {
	if path == "" {
		return nil, nil
	}
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("headshot: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	if pixels <= 0 {
		pixels = HeadshotPixels
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("headshot: %w", err)
	}
	defer f.Close()
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("headshot %s: %w", path, err)
	}
	square := imaging.Fill(img, pixels, pixels, imaging.Center, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, square, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("headshot %s: encode: %w", path, err)
	}
	return &Headshot{Data: buf.Bytes(), Format: ImageJPEG}, nil
}
