package pdf

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"pkt.systems/cvpdf"
)

// word is an unbreakable run of text measured in its face. glue marks a
// word that continues the previous one without a space, as happens where
// two spans meet mid-word.
type word struct {
	text  string
	ref   fontRef
	link  string
	width float64
	space float64
	glue  bool
}

type paragraphItem struct {
	r     *renderer
	style cvpdf.ParagraphStyle
	words []word
	// first and last say whether this piece owns the space before and after
	// the paragraph once it has been split across pages.
	first bool
	last  bool

	wrapWidth float64
	wrapped   [][]word
}

func (r *renderer) buildParagraph(p cvpdf.Paragraph) (item, error) {
	style, ok := r.styles.Style(p.Style)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStyle, p.Style)
	}
	if style.Size <= 0 {
		return nil, fmt.Errorf("style %q: font size must be positive", style.Name)
	}
	if style.Leading <= 0 {
		style.Leading = style.Size * 1.2
	}
	regular, err := r.fonts.resolve(style.Font)
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", style.Name, err)
	}
	bold := regular
	if style.BoldFont != "" {
		if bold, err = r.fonts.resolve(style.BoldFont); err != nil {
			return nil, fmt.Errorf("style %q: %w", style.Name, err)
		}
	}

	pi := &paragraphItem{r: r, style: style, first: true, last: true}
	pendingSpace := false
	if p.Bullet != "" {
		// The bullet leads the first line and wraps like any other word.
		text := encodeText(p.Bullet, regular)
		pi.words = append(pi.words, word{
			text:  text,
			ref:   regular,
			width: r.measure(text, regular, style.Size),
			space: r.measure(" ", regular, style.Size),
		})
		pendingSpace = true
	}
	for _, span := range p.Spans {
		ref := regular
		if span.Bold {
			ref = bold
		}
		space := r.measure(" ", ref, style.Size)
		fields := splitWords(span.Text)
		for i, f := range fields {
			if f == "" {
				// leading or trailing whitespace in the span
				pendingSpace = true
				continue
			}
			text := encodeText(f, ref)
			pi.words = append(pi.words, word{
				text:  text,
				ref:   ref,
				link:  span.Link,
				width: r.measure(text, ref, style.Size),
				space: space,
				glue:  len(pi.words) > 0 && !pendingSpace && i == 0,
			})
			pendingSpace = false
		}
	}
	return pi, nil
}

// splitWords splits on whitespace. An empty first or last field marks
// whitespace at that end of s.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, isBreakingSpace)
	if len(fields) == 0 {
		if s == "" {
			return nil
		}
		return []string{""}
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if isBreakingSpace(first) {
		fields = append([]string{""}, fields...)
	}
	if isBreakingSpace(last) {
		fields = append(fields, "")
	}
	return fields
}

func isBreakingSpace(r rune) bool {
	return r != '\u00a0' && unicode.IsSpace(r)
}

func (p *paragraphItem) kind() string { return "paragraph " + p.style.Name }

// lines wraps the words greedily into lines no wider than the text width.
// Glued words move together. A word wider than the line gets a line of its
// own.
func (p *paragraphItem) lines(width float64) [][]word {
	if p.wrapped != nil && p.wrapWidth == width {
		return p.wrapped
	}
	limit := width - p.style.LeftIndent
	var out [][]word
	var cur []word
	curW := 0.0
	for i := 0; i < len(p.words); {
		j := i + 1
		clusterW := p.words[i].width
		for j < len(p.words) && p.words[j].glue {
			clusterW += p.words[j].width
			j++
		}
		gap := 0.0
		if len(cur) > 0 {
			gap = p.words[i].space
		}
		if len(cur) > 0 && curW+gap+clusterW > limit+epsilon {
			out = append(out, cur)
			cur, curW, gap = nil, 0, 0
		}
		cur = append(cur, p.words[i:j]...)
		curW += gap + clusterW
		i = j
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	if out == nil {
		out = [][]word{}
	}
	p.wrapWidth, p.wrapped = width, out
	return out
}

func (p *paragraphItem) spaceBefore() float64 {
	if p.first {
		return p.style.SpaceBefore
	}
	return 0
}

func (p *paragraphItem) spaceAfter() float64 {
	if p.last {
		return p.style.SpaceAfter
	}
	return 0
}

func (p *paragraphItem) height(width float64) float64 {
	n := len(p.lines(width))
	return p.spaceBefore() + float64(n)*p.style.Leading + p.spaceAfter()
}

// naturalWidth is the full column: paragraphs are left-aligned text and are
// never moved by cell alignment.
func (p *paragraphItem) naturalWidth(width float64) float64 { return width }

func (p *paragraphItem) split(width, avail float64) (item, item, bool) {
	lines := p.lines(width)
	fit := int((avail - p.spaceBefore() + epsilon) / p.style.Leading)
	if fit <= 0 || len(lines) == 0 {
		return nil, nil, false
	}
	if fit >= len(lines) {
		// only the trailing space does not fit
		head := *p
		head.last = false
		return &head, nil, true
	}
	head := &paragraphItem{
		r: p.r, style: p.style, first: p.first,
		words:     flatten(lines[:fit]),
		wrapWidth: width, wrapped: lines[:fit],
	}
	tail := &paragraphItem{
		r: p.r, style: p.style, last: p.last,
		words:     flatten(lines[fit:]),
		wrapWidth: width, wrapped: lines[fit:],
	}
	return head, tail, true
}

func flatten(lines [][]word) []word {
	var out []word
	for _, ln := range lines {
		out = append(out, ln...)
	}
	return out
}

// run is a stretch of a line drawn with one Text call.
type run struct {
	text  strings.Builder
	ref   fontRef
	link  string
	x     float64
	width float64
}

func (p *paragraphItem) draw(x, y, width float64) {
	r := p.r
	size := p.style.Size
	top := y + p.spaceBefore()
	baseOffset := (p.style.Leading-size)/2 + size*0.8
	r.applyColor(p.style.Color)
	for i, ln := range p.lines(width) {
		baseline := top + float64(i)*p.style.Leading + baseOffset
		for _, rn := range lineRuns(ln, x+p.style.LeftIndent) {
			r.applyFont(rn.ref, size)
			r.pdf.Text(rn.x, baseline, rn.text.String())
			r.link(rn.x, baseline-size, rn.width, size*1.1, rn.link)
		}
	}
}

func lineRuns(ln []word, x float64) []*run {
	var runs []*run
	var cur *run
	for i, w := range ln {
		gap := 0.0
		if i > 0 && !w.glue {
			gap = w.space
		}
		if cur == nil || cur.ref != w.ref || cur.link != w.link {
			x += gap
			cur = &run{ref: w.ref, link: w.link, x: x}
			runs = append(runs, cur)
		} else if gap > 0 {
			cur.text.WriteByte(' ')
			cur.width += gap
			x += gap
		}
		cur.text.WriteString(w.text)
		cur.width += w.width
		x += w.width
	}
	return runs
}
