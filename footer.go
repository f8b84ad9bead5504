package cvpdf

// PageFooter draws a left and a right label near the bottom of every page.
type PageFooter struct {
	Left  string
	Right string
	Font  string
	Size  float64
	Color Color
	// Inset is the distance of both labels from the page sides.
	Inset float64
	// Baseline is the distance of the labels from the page bottom.
	Baseline float64
}

// Decorate draws the footer labels on c.
func (f PageFooter) Decorate(c Canvas) {
	width, _ := c.PageSize()
	c.SetFont(f.Font, f.Size)
	c.SetColor(f.Color)
	if f.Left != "" {
		c.DrawString(f.Inset, f.Baseline, f.Left)
	}
	if f.Right != "" {
		c.DrawRightString(width-f.Inset, f.Baseline, f.Right)
	}
}
