package pdf

import "strings"

// PaperSize is a portrait page size in points (1" = 72pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// Supported paper sizes.
var (
	A4Size     = PaperSize{Name: "A4", Width: 595.28, Height: 841.89} // 210mm x 297mm
	A5Size     = PaperSize{Name: "A5", Width: 419.53, Height: 595.28} // 148mm x 210mm
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}   // 8.5" x 11"
	LegalSize  = PaperSize{Name: "Legal", Width: 612, Height: 1008}   // 8.5" x 14"
)

var paperSizes = []PaperSize{A4Size, A5Size, LetterSize, LegalSize}

// PaperSizeByName looks up a paper size, ignoring case.
func PaperSizeByName(name string) (PaperSize, bool) {
	for _, p := range paperSizes {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return PaperSize{}, false
}

// PaperSizeNames returns the names of the supported paper sizes.
func PaperSizeNames() []string {
	names := make([]string, len(paperSizes))
	for i, p := range paperSizes {
		names[i] = p.Name
	}
	return names
}
