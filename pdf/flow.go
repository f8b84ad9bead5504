package pdf

import (
	"fmt"

	"pkt.systems/cvpdf"
)

const epsilon = 0.01

// item is a laid-out block. Heights depend on the available width only, so
// an item can be measured any number of times before it is drawn.
type item interface {
	kind() string
	height(width float64) float64
	// naturalWidth is the width the item occupies when placed in a column of
	// the given width.
	naturalWidth(width float64) float64
	// split returns a head that fits in avail and the remainder. A nil tail
	// means nothing is left over. ok is false when no non-empty head fits.
	split(width, avail float64) (head, tail item, ok bool)
	draw(x, y, width float64)
}

func (r *renderer) buildBlocks(blocks []cvpdf.Block) ([]item, error) {
	items := make([]item, 0, len(blocks))
	for i, b := range blocks {
		it, err := r.build(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *renderer) build(b cvpdf.Block) (item, error) {
	switch b := b.(type) {
	case cvpdf.Paragraph:
		return r.buildParagraph(b)
	case *cvpdf.Paragraph:
		return r.buildParagraph(*b)
	case cvpdf.Spacer:
		return spacerItem{h: b.Height}, nil
	case *cvpdf.Spacer:
		return spacerItem{h: b.Height}, nil
	case cvpdf.Image:
		return r.buildImage(b)
	case *cvpdf.Image:
		return r.buildImage(*b)
	case cvpdf.Table:
		return r.buildTable(b)
	case *cvpdf.Table:
		return r.buildTable(*b)
	default:
		return nil, fmt.Errorf("unsupported block %T", b)
	}
}

// flow places items top to bottom, breaking pages when an item does not fit
// in the remaining frame.
func (r *renderer) flow(items []item) error {
	for len(items) > 0 {
		it := items[0]
		width := r.frame.width
		avail := r.frame.bottom - r.y
		h := it.height(width)
		if h <= avail+epsilon {
			it.draw(r.frame.left, r.y, width)
			r.y += h
			items = items[1:]
			continue
		}
		if head, tail, ok := it.split(width, avail); ok {
			head.draw(r.frame.left, r.y, width)
			if tail == nil {
				items = items[1:]
			} else {
				items[0] = tail
			}
			r.pageBreak(it)
			continue
		}
		if r.atTop() {
			return fmt.Errorf("%w: %s is %.1fpt tall, frame is %.1fpt", ErrFrameOverflow, it.kind(), h, r.frame.height())
		}
		r.pageBreak(it)
	}
	return nil
}

func (r *renderer) pageBreak(next item) {
	r.log.Debug("page break", "page", r.pdf.PageNo(), "next", next.kind())
	r.addPage()
}

type spacerItem struct {
	h float64
}

func (spacerItem) kind() string                   { return "spacer" }
func (s spacerItem) height(float64) float64       { return max(s.h, 0) }
func (spacerItem) naturalWidth(float64) float64   { return 0 }
func (spacerItem) draw(float64, float64, float64) {}

// split clips the spacer to the space left on the page. The rest is dropped
// so a new page never starts with leftover whitespace.
func (s spacerItem) split(_, avail float64) (item, item, bool) {
	return spacerItem{h: max(avail, 0)}, nil, true
}
