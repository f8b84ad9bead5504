package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"pkt.systems/cvpdf"
)

type imageItem struct {
	r    *renderer
	name string
	opts fpdf.ImageOptions
	w, h float64
	link string
}

func imageType(format cvpdf.ImageFormat) string {
	switch strings.ToUpper(string(format)) {
	case "PNG":
		return "PNG"
	case "JPG", "JPEG":
		return "JPG"
	case "GIF":
		return "GIF"
	default:
		return ""
	}
}

// buildImage registers the image data once per name. A missing width or
// height is derived from the image's aspect ratio.
func (r *renderer) buildImage(img cvpdf.Image) (item, error) {
	typ := imageType(img.Format)
	if typ == "" {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedImage, img.Format)
	}
	name := img.Name
	if name == "" {
		name = fmt.Sprintf("image-%d", len(r.images)+1)
	}
	opts, ok := r.images[name]
	if !ok {
		if len(img.Data) == 0 {
			return nil, fmt.Errorf("image %q: no data", name)
		}
		opts = fpdf.ImageOptions{ImageType: typ}
		r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
		if err := r.pdf.Error(); err != nil {
			return nil, fmt.Errorf("image %q: %w", name, err)
		}
		r.images[name] = opts
		r.log.Debug("registered image", "name", name, "type", typ, "bytes", len(img.Data))
	}
	width, height := img.Width, img.Height
	if width <= 0 || height <= 0 {
		info := r.pdf.GetImageInfo(name)
		if info == nil {
			return nil, fmt.Errorf("image %q: not registered", name)
		}
		w, h := info.Extent()
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("image %q: invalid dimensions", name)
		}
		switch {
		case width > 0:
			height = width * h / w
		case height > 0:
			width = height * w / h
		default:
			width, height = w, h
		}
	}
	return &imageItem{r: r, name: name, opts: opts, w: width, h: height, link: img.Link}, nil
}

func (i *imageItem) kind() string                              { return "image " + i.name }
func (i *imageItem) height(float64) float64                    { return i.h }
func (i *imageItem) naturalWidth(float64) float64              { return i.w }
func (i *imageItem) split(float64, float64) (item, item, bool) { return nil, nil, false }

func (i *imageItem) draw(x, y, _ float64) {
	i.r.pdf.ImageOptions(i.name, x, y, i.w, i.h, false, i.opts, 0, "")
	i.r.link(x, y, i.w, i.h, i.link)
}
