package pdf

import (
	"fmt"

	"pkt.systems/cvpdf"
)

type cellItem struct {
	items  []item
	shrink bool
}

type tableItem struct {
	r         *renderer
	colWidths []float64
	ncols     int
	align     cvpdf.HAlign
	valign    cvpdf.VAlign
	pad       cvpdf.Padding
	rows      [][]cellItem
}

func (r *renderer) buildTable(t cvpdf.Table) (item, error) {
	ti := &tableItem{
		r:         r,
		colWidths: t.ColWidths,
		align:     t.Align,
		valign:    t.VAlign,
		pad:       t.Padding,
		rows:      make([][]cellItem, 0, len(t.Rows)),
	}
	for ri, row := range t.Rows {
		cells := make([]cellItem, 0, len(row))
		for ci, cell := range row {
			items, err := r.buildBlocks(cell.Blocks)
			if err != nil {
				return nil, fmt.Errorf("table cell %d,%d: %w", ri, ci, err)
			}
			cells = append(cells, cellItem{items: items, shrink: cell.Shrink})
		}
		ti.ncols = max(ti.ncols, len(cells))
		ti.rows = append(ti.rows, cells)
	}
	ti.ncols = max(ti.ncols, len(t.ColWidths))
	return ti, nil
}

func (t *tableItem) kind() string { return fmt.Sprintf("table of %d rows", len(t.rows)) }

// columns resolves column widths. Zero widths share what the fixed columns
// leave over.
func (t *tableItem) columns(width float64) []float64 {
	widths := make([]float64, t.ncols)
	fixed, flex := 0.0, 0
	for i := range widths {
		if i < len(t.colWidths) && t.colWidths[i] > 0 {
			widths[i] = t.colWidths[i]
			fixed += widths[i]
			continue
		}
		flex++
	}
	if flex > 0 {
		share := max(width-fixed, 0) / float64(flex)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func stackHeight(items []item, width float64) float64 {
	h := 0.0
	for _, it := range items {
		h += it.height(width)
	}
	return h
}

// cellLayout returns the scale applied to the cell's content and the
// resulting height. Shrink cells taller than the frame are scaled down so
// they fit, and their content is laid out at the correspondingly wider
// width.
func (t *tableItem) cellLayout(cell cellItem, inner float64) (float64, float64) {
	h := stackHeight(cell.items, inner)
	limit := t.r.frame.height() - t.pad.Top - t.pad.Bottom
	if !cell.shrink || limit <= 0 || h <= limit+epsilon {
		return 1, h
	}
	scale := limit / h
	for range 4 {
		h = stackHeight(cell.items, inner/scale) * scale
		if h <= limit+epsilon {
			break
		}
		scale *= limit / h
	}
	return scale, h
}

func (t *tableItem) rowHeight(row []cellItem, widths []float64) float64 {
	h := 0.0
	for i, cell := range row {
		_, ch := t.cellLayout(cell, t.innerWidth(widths[i]))
		h = max(h, ch)
	}
	return h + t.pad.Top + t.pad.Bottom
}

func (t *tableItem) innerWidth(col float64) float64 {
	return max(col-t.pad.Left-t.pad.Right, 0)
}

func (t *tableItem) height(width float64) float64 {
	widths := t.columns(width)
	h := 0.0
	for _, row := range t.rows {
		h += t.rowHeight(row, widths)
	}
	return h
}

func (t *tableItem) naturalWidth(width float64) float64 {
	total := 0.0
	for i := 0; i < t.ncols; i++ {
		if i >= len(t.colWidths) || t.colWidths[i] <= 0 {
			return width
		}
		total += t.colWidths[i]
	}
	return min(total, width)
}

// split breaks between rows.
func (t *tableItem) split(width, avail float64) (item, item, bool) {
	widths := t.columns(width)
	used, fit := 0.0, 0
	for _, row := range t.rows {
		h := t.rowHeight(row, widths)
		if used+h > avail+epsilon {
			break
		}
		used += h
		fit++
	}
	if fit == 0 {
		return nil, nil, false
	}
	head := *t
	head.rows = t.rows[:fit]
	if fit == len(t.rows) {
		return &head, nil, true
	}
	tail := *t
	tail.rows = t.rows[fit:]
	return &head, &tail, true
}

func (t *tableItem) draw(x, y, width float64) {
	widths := t.columns(width)
	for _, row := range t.rows {
		rh := t.rowHeight(row, widths)
		cx := x
		for i, cell := range row {
			inner := t.innerWidth(widths[i])
			scale, ch := t.cellLayout(cell, inner)
			offset := 0.0
			switch t.valign {
			case cvpdf.VAlignMiddle:
				offset = (rh - t.pad.Top - t.pad.Bottom - ch) / 2
			case cvpdf.VAlignBottom:
				offset = rh - t.pad.Top - t.pad.Bottom - ch
			}
			t.drawCell(cell, cx+t.pad.Left, y+t.pad.Top+offset, inner, scale)
			cx += widths[i]
		}
		y += rh
	}
}

func (t *tableItem) drawCell(cell cellItem, x, y, inner, scale float64) {
	if scale < 1 {
		t.r.beginScale(scale, x, y)
		defer t.r.endScale()
		inner /= scale
	}
	for _, it := range cell.items {
		offset := 0.0
		switch t.align {
		case cvpdf.AlignCenter:
			offset = (inner - it.naturalWidth(inner)) / 2
		case cvpdf.AlignRight:
			offset = inner - it.naturalWidth(inner)
		}
		it.draw(x+max(offset, 0), y, inner)
		y += it.height(inner)
	}
}
