package cvpdf

import (
	"sort"
	"strings"
)

// Semantic style names used by the assembler.
const (
	StyleNameLine  = "NameLine"
	StyleSubLine   = "SubLine"
	StyleHeading   = "H2Accent"
	StyleBody      = "BodyMain"
	StyleBullet    = "BulletItem"
	StyleSmallNote = "SmallNote"
)

// ParagraphStyle describes how a paragraph is typeset. Sizes are in points.
type ParagraphStyle struct {
	Name        string
	Font        string
	BoldFont    string
	Size        float64
	Leading     float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// StyleSheet maps semantic style names to paragraph styles.
type StyleSheet struct {
	styles map[string]ParagraphStyle
}

// NewStyleSheet returns a StyleSheet holding the given styles. Later styles
// replace earlier ones with the same name.
func NewStyleSheet(styles ...ParagraphStyle) StyleSheet {
	m := make(map[string]ParagraphStyle, len(styles))
	for _, s := range styles {
		m[normalizeStyleName(s.Name)] = s
	}
	return StyleSheet{styles: m}
}

// Style returns the style registered under name.
func (s StyleSheet) Style(name string) (ParagraphStyle, bool) {
	style, ok := s.styles[normalizeStyleName(name)]
	return style, ok
}

// Names returns the registered style names in sorted order.
func (s StyleSheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for _, style := range s.styles {
		names = append(names, style.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered styles.
func (s StyleSheet) Len() int { return len(s.styles) }

func normalizeStyleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultStyles builds the style sheet from the configured fonts and accent.
func DefaultStyles(cfg Config) (StyleSheet, error) {
	accent, err := ParseColor(cfg.Accent)
	if err != nil {
		return StyleSheet{}, err
	}
	base, bold := cfg.BaseFont, cfg.BoldFont
	if base == "" {
		base = DefaultBaseFont
	}
	if bold == "" {
		bold = DefaultBoldFont
	}
	return NewStyleSheet(
		ParagraphStyle{Name: StyleNameLine, Font: bold, BoldFont: bold, Size: 20, Leading: 23, Color: Black},
		ParagraphStyle{Name: StyleSubLine, Font: base, BoldFont: bold, Size: 11, Leading: 14, Color: Gray},
		ParagraphStyle{Name: StyleHeading, Font: bold, BoldFont: bold, Size: 12.5, Leading: 16, Color: accent, SpaceBefore: 8, SpaceAfter: 4},
		ParagraphStyle{Name: StyleBody, Font: base, BoldFont: bold, Size: 10.5, Leading: 14, Color: Black},
		ParagraphStyle{Name: StyleBullet, Font: base, BoldFont: bold, Size: 10.5, Leading: 14, Color: Black, LeftIndent: 10},
		ParagraphStyle{Name: StyleSmallNote, Font: base, BoldFont: bold, Size: 9.5, Leading: 12, Color: Gray},
	), nil
}
