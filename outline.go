package cvpdf

import (
	"fmt"
	"strings"
)

// OutlineLine is one line of a document outline.
type OutlineLine struct {
	Depth int
	Text  string
}

// Outline describes the block tree of doc, one line per block or cell.
func Outline(doc Document) []OutlineLine {
	var lines []OutlineLine
	for _, b := range doc.Blocks {
		lines = outlineBlock(lines, b, 0)
	}
	return lines
}

func outlineBlock(lines []OutlineLine, b Block, depth int) []OutlineLine {
	switch v := b.(type) {
	case Paragraph:
		var text strings.Builder
		for _, s := range v.Spans {
			text.WriteString(s.Text)
		}
		prefix := ""
		if v.Bullet != "" {
			prefix = v.Bullet + " "
		}
		return append(lines, OutlineLine{Depth: depth, Text: fmt.Sprintf("%s: %s%s", v.Style, prefix, text.String())})
	case Spacer:
		return append(lines, OutlineLine{Depth: depth, Text: fmt.Sprintf("spacer %.1fpt", v.Height)})
	case Image:
		return append(lines, OutlineLine{Depth: depth, Text: fmt.Sprintf("image %s %.1fx%.1fpt", v.Name, v.Width, v.Height)})
	case Table:
		cols := 0
		for _, row := range v.Rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		lines = append(lines, OutlineLine{Depth: depth, Text: fmt.Sprintf("table %dx%d", len(v.Rows), cols)})
		for r, row := range v.Rows {
			for c, cell := range row {
				label := fmt.Sprintf("cell %d,%d", r, c)
				if cell.Shrink {
					label += " (shrink)"
				}
				lines = append(lines, OutlineLine{Depth: depth + 1, Text: label})
				for _, child := range cell.Blocks {
					lines = outlineBlock(lines, child, depth+2)
				}
			}
		}
		return lines
	default:
		return append(lines, OutlineLine{Depth: depth, Text: fmt.Sprintf("%T", b)})
	}
}
