package cvpdf

import (
	"fmt"
	"strings"
)

// ContactSeparator joins the entries of the contact line.
const ContactSeparator = " · "

// Block names of the header images.
const (
	QRImageName       = "qr-code"
	HeadshotImageName = "headshot"
)

// Assemble maps a CV record to the ordered block list consumed by the layout
// engine. It performs no I/O.
func Assemble(c Content, styles StyleSheet, opts ...AssembleOption) Document {
	cfg := defaultAssembleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var blocks []Block
	blocks = append(blocks, headerRow(c, cfg), Spacer{Height: MM(6)})
	blocks = append(blocks, summarySection(c)...)
	blocks = append(blocks, experienceSection(c)...)
	if cols, ok := columnsBlock(c); ok {
		blocks = append(blocks, Spacer{Height: MM(4)}, cols)
	}
	blocks = append(blocks, Spacer{Height: MM(6)}, text(StyleSmallNote, footerNote(c, cfg.generator)))

	holder := cfg.copyright
	if holder == "" {
		holder = c.Name
	}
	footerFont := DefaultBaseFont
	if body, ok := styles.Style(StyleBody); ok && body.Font != "" {
		footerFont = body.Font
	}
	footer := PageFooter{
		Left:     generatedLabel(cfg),
		Font:     footerFont,
		Size:     8,
		Color:    Gray,
		Inset:    cfg.margin,
		Baseline: MM(12),
	}
	if holder != "" {
		footer.Right = "© " + holder
	}

	title := "Curriculum Vitae"
	if c.Name != "" {
		title = c.Name + " — CV"
	}
	return Document{
		Title:  title,
		Author: c.Name,
		Styles: styles,
		Blocks: blocks,
		Footer: footer,
	}
}

func text(style, s string) Paragraph {
	return Paragraph{Style: style, Spans: []Span{{Text: s}}}
}

func headerRow(c Content, cfg assembleConfig) Table {
	var left []Block
	if c.Name != "" {
		left = append(left, text(StyleNameLine, c.Name))
	}
	if c.Title != "" {
		left = append(left, text(StyleSubLine, c.Title))
	}
	if spans := contactSpans(c); len(spans) > 0 {
		left = append(left, Spacer{Height: MM(2)}, Paragraph{Style: StyleBody, Spans: spans})
	}

	col := cfg.imageSize + MM(2)
	return Table{
		Rows: [][]Cell{{
			{Blocks: left, Shrink: true},
			{Blocks: []Block{imageStack(cfg)}},
		}},
		ColWidths: []float64{0, col},
		Align:     AlignRight,
		VAlign:    VAlignTop,
	}
}

// imageStack is the right-hand header column: the QR code, and the headshot
// beneath it when one was loaded.
func imageStack(cfg assembleConfig) Table {
	var rows [][]Cell
	if len(cfg.qrCode) > 0 {
		rows = append(rows, []Cell{{Blocks: []Block{Image{
			Name:   QRImageName,
			Data:   cfg.qrCode,
			Format: ImagePNG,
			Width:  cfg.imageSize,
			Height: cfg.imageSize,
			Link:   cfg.qrLink,
		}}}})
	}
	if cfg.headshot != nil && len(cfg.headshot.Data) > 0 {
		rows = append(rows,
			[]Cell{{Blocks: []Block{Spacer{Height: MM(2)}}}},
			[]Cell{{Blocks: []Block{Image{
				Name:   HeadshotImageName,
				Data:   cfg.headshot.Data,
				Format: cfg.headshot.Format,
				Width:  cfg.imageSize,
				Height: cfg.imageSize,
			}}}},
		)
	}
	return Table{
		Rows:      rows,
		ColWidths: []float64{cfg.imageSize + MM(2)},
		Align:     AlignRight,
		VAlign:    VAlignTop,
	}
}

func contactSpans(c Content) []Span {
	var entries []Span
	if c.Email != "" {
		entries = append(entries, Span{Text: c.Email, Link: "mailto:" + c.Email})
	}
	if c.Phone != "" {
		entries = append(entries, Span{Text: c.Phone})
	}
	if c.Location != "" {
		entries = append(entries, Span{Text: c.Location})
	}
	for _, link := range c.Links {
		if link.URL == "" {
			continue
		}
		label := link.Label
		if label == "" {
			label = link.URL
		}
		entries = append(entries, Span{Text: label, Link: link.URL})
	}
	if len(entries) == 0 {
		return nil
	}
	spans := make([]Span, 0, 2*len(entries)-1)
	for i, e := range entries {
		if i > 0 {
			spans = append(spans, Span{Text: ContactSeparator})
		}
		spans = append(spans, e)
	}
	return spans
}

func summarySection(c Content) []Block {
	if strings.TrimSpace(c.Summary) == "" {
		return nil
	}
	return []Block{
		text(StyleHeading, "Summary"),
		text(StyleBody, c.Summary),
		Spacer{Height: MM(3)},
	}
}

func experienceSection(c Content) []Block {
	if len(c.Experience) == 0 {
		return nil
	}
	blocks := []Block{text(StyleHeading, "Experience")}
	for _, job := range c.Experience {
		blocks = append(blocks, Paragraph{
			Style: StyleBody,
			Spans: []Span{{Text: jobHeading(job), Bold: true}},
		})
		for _, b := range job.Bullets {
			blocks = append(blocks, Paragraph{
				Style:  StyleBullet,
				Spans:  []Span{{Text: b}},
				Bullet: "•",
			})
		}
		blocks = append(blocks, Spacer{Height: MM(1)})
	}
	return blocks
}

func jobHeading(job Experience) string {
	var b strings.Builder
	b.WriteString(job.Company)
	if job.Role != "" {
		if b.Len() > 0 {
			b.WriteString(" — ")
		}
		b.WriteString(job.Role)
	}
	if job.Dates != "" {
		fmt.Fprintf(&b, " (%s)", job.Dates)
	}
	return b.String()
}

// columnsBlock builds the two-column skills block. It reports false when
// both columns are empty.
func columnsBlock(c Content) (Table, bool) {
	var left []Block
	left = appendSection(left, "Technical", c.Tech)
	if len(c.Education) > 0 {
		if len(left) > 0 {
			left = append(left, Spacer{Height: MM(2)})
		}
		left = append(left, text(StyleHeading, "Education"))
		for _, item := range c.Education {
			left = append(left, text(StyleBody, item))
		}
	}

	var right []Block
	right = appendSection(right, "Languages", c.Languages)
	right = appendSection(right, "Data Providers", c.Providers)

	if len(left) == 0 && len(right) == 0 {
		return Table{}, false
	}
	return Table{
		Rows: [][]Cell{{
			{Blocks: left, Shrink: true},
			{Blocks: right, Shrink: true},
		}},
		ColWidths: []float64{0, 0},
		VAlign:    VAlignTop,
		Padding:   Padding{Right: 12},
	}, true
}

func appendSection(blocks []Block, heading, body string) []Block {
	if strings.TrimSpace(body) == "" {
		return blocks
	}
	if len(blocks) > 0 {
		blocks = append(blocks, Spacer{Height: MM(2)})
	}
	return append(blocks, text(StyleHeading, heading), text(StyleBody, body))
}

func footerNote(c Content, generator string) string {
	var labels []string
	for _, link := range c.Links {
		if link.URL != "" && link.Label != "" {
			labels = append(labels, link.Label)
		}
	}
	if len(labels) == 0 {
		return "Generated with " + generator + "."
	}
	return fmt.Sprintf("Generated with %s — links above for %s.", generator, strings.Join(labels, ContactSeparator))
}

func generatedLabel(cfg assembleConfig) string {
	if cfg.generatedAt.IsZero() {
		return "Generated with " + cfg.generator
	}
	return fmt.Sprintf("Generated with %s — v%s", cfg.generator, cfg.generatedAt.Format("2006.01.02"))
}
