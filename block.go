package cvpdf

// MM converts millimetres to points.
func MM(v float64) float64 {
	return v * 72 / 25.4
}

// Block is one unit of flowable content: Paragraph, Spacer, Table or Image.
type Block interface {
	isBlock()
}

// Span is a run of text inside a paragraph.
type Span struct {
	Text string
	Bold bool
	// Link makes the span a clickable link to the URL.
	Link string
}

// Paragraph is wrapped text in a named style.
type Paragraph struct {
	Style string
	Spans []Span
	// Bullet is the first word of the paragraph, set at the style's left indent.
	Bullet string
}

// Spacer is vertical whitespace.
type Spacer struct {
	Height float64
}

// ImageFormat names an embeddable raster format.
type ImageFormat string

// Supported image formats.
const (
	ImagePNG  ImageFormat = "PNG"
	ImageJPEG ImageFormat = "JPG"
)

// Image is a raster drawn at a fixed size. Name identifies the image inside
// the document and must be unique per distinct Data.
type Image struct {
	Name   string
	Data   []byte
	Format ImageFormat
	Width  float64
	Height float64
	Link   string
}

// HAlign is horizontal alignment inside a table cell.
type HAlign uint8

// Horizontal alignments.
const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical alignment inside a table row.
type VAlign uint8

// Vertical alignments.
const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// Padding is the space between a cell edge and its content.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Cell holds a vertical stack of blocks. A Shrink cell scales its content
// down instead of overflowing the page frame.
type Cell struct {
	Blocks []Block
	Shrink bool
}

// Table lays cells out in rows. A zero column width shares the remaining
// width equally with the other zero columns.
type Table struct {
	Rows      [][]Cell
	ColWidths []float64
	Align     HAlign
	VAlign    VAlign
	Padding   Padding
}

func (Paragraph) isBlock() {}
func (Spacer) isBlock()    {}
func (Image) isBlock()     {}
func (Table) isBlock()     {}

// Canvas is the drawing surface handed to page decorators. Coordinates are
// points measured from the bottom-left corner of the page.
type Canvas interface {
	PageSize() (width, height float64)
	SetFont(name string, size float64)
	SetColor(c Color)
	DrawString(x, y float64, text string)
	DrawRightString(x, y float64, text string)
}

// Decorator draws fixed content on every page.
type Decorator interface {
	Decorate(c Canvas)
}

// Document is an assembled CV ready for layout.
type Document struct {
	Title  string
	Author string
	Styles StyleSheet
	Blocks []Block
	Footer Decorator
}
