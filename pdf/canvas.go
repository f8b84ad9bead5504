package pdf

import (
	"fmt"

	"pkt.systems/cvpdf"
)

// pageCanvas adapts the current page to cvpdf.Canvas for footers. y
// coordinates are measured from the bottom of the page.
type pageCanvas struct {
	r    *renderer
	ref  fontRef
	size float64
}

func newPageCanvas(r *renderer) *pageCanvas {
	c := &pageCanvas{r: r}
	c.SetFont(cvpdf.DefaultBaseFont, 8)
	c.SetColor(cvpdf.Black)
	return c
}

func (c *pageCanvas) PageSize() (float64, float64) {
	return c.r.pdf.GetPageSize()
}

func (c *pageCanvas) SetFont(name string, size float64) {
	ref, err := c.r.fonts.resolve(name)
	if err != nil {
		c.r.pdf.SetError(fmt.Errorf("page decoration: %w", err))
		return
	}
	c.ref, c.size = ref, size
	c.r.applyFont(ref, size)
}

func (c *pageCanvas) SetColor(col cvpdf.Color) {
	c.r.applyColor(col)
}

func (c *pageCanvas) DrawString(x, y float64, text string) {
	if text == "" {
		return
	}
	_, h := c.PageSize()
	c.r.pdf.Text(x, h-y, encodeText(text, c.ref))
}

func (c *pageCanvas) DrawRightString(x, y float64, text string) {
	if text == "" {
		return
	}
	s := encodeText(text, c.ref)
	_, h := c.PageSize()
	c.r.pdf.Text(x-c.r.pdf.GetStringWidth(s), h-y, s)
}
