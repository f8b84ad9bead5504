package pdf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"pkt.systems/cvpdf"
)

var (
	// ErrUnknownStyle reports a paragraph whose style is not in the
	// document's style sheet.
	ErrUnknownStyle = errors.New("unknown paragraph style")
	// ErrFrameOverflow reports a block that cannot be split and is taller
	// than an empty page frame.
	ErrFrameOverflow = errors.New("block does not fit the page frame")
	// ErrUnsupportedImage reports an image format the PDF writer cannot
	// embed.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document cvpdf.Document
	Writer   io.Writer
	Config   Config
	// Logger receives page break and image registration events. Nil
	// discards them.
	Logger *slog.Logger
}

// Render lays the document's blocks out on pages and writes the PDF.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	paper, ok := PaperSizeByName(cfg.PageSize)
	if !ok {
		return fmt.Errorf("pdf render: unknown page size %q", cfg.PageSize)
	}
	if 2*cfg.Margin >= paper.Width || 2*cfg.Margin >= paper.Height {
		return fmt.Errorf("pdf render: margin %.1fpt leaves no room on %s", cfg.Margin, paper.Name)
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCompression(!cfg.DisableCompression)
	pdf.SetCatalogSort(true)
	created := cfg.CreationDate
	if created.IsZero() {
		created = ReproducibleEpoch
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	doc := req.Document
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}
	pdf.SetCreator(cfg.Creator, true)

	fsys := cfg.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	fonts, err := registerFonts(pdf, fsys, cfg.Fonts)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	r := &renderer{
		pdf:    pdf,
		styles: doc.Styles,
		fonts:  fonts,
		frame: frame{
			left:   cfg.Margin,
			top:    cfg.Margin,
			width:  paper.Width - 2*cfg.Margin,
			bottom: paper.Height - cfg.Margin,
		},
		images: make(map[string]fpdf.ImageOptions),
		log:    logger,
	}
	items, err := r.buildBlocks(doc.Blocks)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if doc.Footer != nil {
		pdf.SetFooterFunc(func() {
			doc.Footer.Decorate(newPageCanvas(r))
		})
	}

	r.addPage()
	if err := r.flow(items); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	pages := pdf.PageNo()
	if err := pdf.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	logger.Debug("rendered document", "pages", pages, "blocks", len(doc.Blocks))
	return nil
}

// frame is the printable rectangle of a page, in points from the top-left.
type frame struct {
	left   float64
	top    float64
	width  float64
	bottom float64
}

func (f frame) height() float64 { return f.bottom - f.top }

// scaleTransform records an active TransformScale so link rectangles can be
// mapped to page coordinates.
type scaleTransform struct {
	factor float64
	x, y   float64
}

type renderer struct {
	pdf    *fpdf.Fpdf
	styles cvpdf.StyleSheet
	fonts  fontSet
	frame  frame
	y      float64
	images map[string]fpdf.ImageOptions
	scales []scaleTransform
	log    *slog.Logger
}

func (r *renderer) addPage() {
	r.pdf.AddPage()
	r.y = r.frame.top
}

func (r *renderer) atTop() bool {
	return r.y <= r.frame.top+epsilon
}

func (r *renderer) applyFont(ref fontRef, size float64) {
	r.pdf.SetFont(ref.family, ref.style, size)
}

func (r *renderer) applyColor(c cvpdf.Color) {
	r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (r *renderer) measure(text string, ref fontRef, size float64) float64 {
	if text == "" {
		return 0
	}
	r.applyFont(ref, size)
	return r.pdf.GetStringWidth(text)
}

// link adds a URI annotation for a rectangle given in the current drawing
// coordinates.
func (r *renderer) link(x, y, w, h float64, url string) {
	if url == "" || w <= 0 || h <= 0 {
		return
	}
	for i := len(r.scales) - 1; i >= 0; i-- {
		t := r.scales[i]
		x = t.x + (x-t.x)*t.factor
		y = t.y + (y-t.y)*t.factor
		w *= t.factor
		h *= t.factor
	}
	r.pdf.LinkString(x, y, w, h, url)
}

func (r *renderer) beginScale(factor, x, y float64) {
	r.pdf.TransformBegin()
	r.pdf.TransformScale(factor*100, factor*100, x, y)
	r.scales = append(r.scales, scaleTransform{factor: factor, x: x, y: y})
}

func (r *renderer) endScale() {
	r.scales = r.scales[:len(r.scales)-1]
	r.pdf.TransformEnd()
}
