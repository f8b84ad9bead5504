package pdf

import (
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/google/go-cmp/cmp"

	"pkt.systems/cvpdf"
)

func newTestRenderer(t *testing.T) *renderer {
	t.Helper()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: A4Size.Width, Ht: A4Size.Height},
	})
	return &renderer{
		pdf:    pdf,
		styles: testStyles(),
		frame:  frame{left: 50, top: 50, width: A4Size.Width - 100, bottom: A4Size.Height - 50},
		images: make(map[string]fpdf.ImageOptions),
		log:    slog.New(slog.DiscardHandler),
	}
}

func buildParagraph(t *testing.T, r *renderer, p cvpdf.Paragraph) *paragraphItem {
	t.Helper()
	it, err := r.buildParagraph(p)
	if err != nil {
		t.Fatalf("build paragraph: %v", err)
	}
	return it.(*paragraphItem)
}

func lineTexts(lines [][]word) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		s := ""
		for i, w := range ln {
			if i > 0 && !w.glue {
				s += " "
			}
			s += w.text
		}
		out = append(out, s)
	}
	return out
}

func TestSplitWords(t *testing.T) {
	cases := map[string][]string{
		"":             nil,
		" ":            {""},
		"a b":          {"a", "b"},
		" a":           {"", "a"},
		"a ":           {"a", ""},
		"a\u00a0b c":   {"a\u00a0b", "c"},
		" · ":          {"", "·", ""},
		"two  spaces ": {"two", "spaces", ""},
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, splitWords(in)); diff != "" {
			t.Fatalf("splitWords(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestEncodeText(t *testing.T) {
	core := fontRef{family: "Helvetica"}
	cases := map[string]string{
		"plain":      "plain",
		"café":       "caf\xe9",
		"cafe\u0301": "caf\xe9",
		"a\u00a0b":   "a b",
		"2021–2024":  "2021\x962024",
		"emoji 😀":    "emoji ?",
		"© holder":   "\xa9 holder",
		"dot · sep":  "dot \xb7 sep",
		"bullet •":   "bullet \x95",
		"euro €":     "euro \x80",
	}
	for in, want := range cases {
		if got := encodeText(in, core); got != want {
			t.Fatalf("encodeText(%q) = %q, want %q", in, got, want)
		}
	}
	utf := fontRef{family: "cv-regular", utf8: true}
	if got := encodeText("emoji 😀 x", utf); got != "emoji 😀 x" {
		t.Fatalf("utf8 font text changed: %q", got)
	}
}

func TestParagraphWrapsWithinWidth(t *testing.T) {
	r := newTestRenderer(t)
	p := buildParagraph(t, r, para("body", "The quick brown fox jumps over the lazy dog and keeps running across the field until dusk."))
	const width = 120
	lines := p.lines(width)
	if len(lines) < 3 {
		t.Fatalf("expected wrapped lines, got %v", lineTexts(lines))
	}
	for _, ln := range lines {
		w := 0.0
		for i, wd := range ln {
			if i > 0 && !wd.glue {
				w += wd.space
			}
			w += wd.width
		}
		if w > width+epsilon {
			t.Fatalf("line %q is %.2fpt wide, limit %dpt", lineTexts([][]word{ln}), w, width)
		}
	}
	if got, want := p.height(width), float64(len(lines))*12; got != want {
		t.Fatalf("height = %.2f, want %.2f", got, want)
	}
}

func TestParagraphKeepsGluedSpansTogether(t *testing.T) {
	r := newTestRenderer(t)
	p := buildParagraph(t, r, cvpdf.Paragraph{Style: "body", Spans: []cvpdf.Span{
		{Text: "alpha beta "},
		{Text: "gam", Bold: true},
		{Text: "ma delta"},
	}})
	got := lineTexts(p.lines(1000))
	if diff := cmp.Diff([]string{"alpha beta gamma delta"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	// gam+ma must move as one unit
	narrow := lineTexts(p.lines(1))
	if !slices.Contains(narrow, "gamma") {
		t.Fatalf("expected glued word on its own line, got %v", narrow)
	}
}

func TestParagraphSplitKeepsSpacing(t *testing.T) {
	r := newTestRenderer(t)
	styles := cvpdf.NewStyleSheet(cvpdf.ParagraphStyle{Name: "h", Font: "Helvetica", Size: 10, Leading: 12, SpaceBefore: 8, SpaceAfter: 4})
	r.styles = styles
	p := buildParagraph(t, r, para("h", "one two three four five six"))
	const width = 40
	total := len(p.lines(width))
	if total < 3 {
		t.Fatalf("expected at least three lines, got %d", total)
	}
	head, tail, ok := p.split(width, 8+2*12)
	if !ok || tail == nil {
		t.Fatalf("expected a split")
	}
	if got := head.height(width); got != 8+2*12 {
		t.Fatalf("head height = %.2f", got)
	}
	if got, want := tail.height(width), float64(total-2)*12+4; got != want {
		t.Fatalf("tail height = %.2f, want %.2f", got, want)
	}
	if _, _, ok := p.split(width, 10); ok {
		t.Fatalf("expected no split when not even one line fits")
	}
}

func TestParagraphBulletAndLinkDraw(t *testing.T) {
	r := newTestRenderer(t)
	r.pdf.AddPage()
	p := buildParagraph(t, r, cvpdf.Paragraph{
		Style:  "body",
		Bullet: "•",
		Spans:  []cvpdf.Span{{Text: "see "}, {Text: "site", Link: "https://example.com/"}},
	})
	if len(p.words) == 0 || p.words[0].text != "\x95" {
		t.Fatalf("expected bullet as first word, got %+v", p.words)
	}
	if p.words[1].glue {
		t.Fatalf("text after the bullet must be spaced, not glued")
	}
	p.draw(50, 50, 200)
	if err := r.pdf.Error(); err != nil {
		t.Fatalf("draw: %v", err)
	}
}

func TestBulletSharesRunAtLeftIndent(t *testing.T) {
	r := newTestRenderer(t)
	r.styles = cvpdf.NewStyleSheet(cvpdf.ParagraphStyle{Name: "item", Font: "Helvetica", Size: 10, Leading: 12, LeftIndent: 10})
	p := buildParagraph(t, r, cvpdf.Paragraph{
		Style:  "item",
		Bullet: "•",
		Spans:  []cvpdf.Span{{Text: "Built streaming ingest for match tracking data across several leagues"}},
	})
	lines := p.lines(150)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lineTexts(lines))
	}
	runs := lineRuns(lines[0], 50+10)
	if len(runs) != 1 {
		t.Fatalf("expected one run on the first line, got %d", len(runs))
	}
	if got := runs[0].text.String(); !strings.HasPrefix(got, "\x95 Built") {
		t.Fatalf("first run %q does not start with the bullet", got)
	}
	if runs[0].x != 60 {
		t.Fatalf("bullet at x=%.2f, want 60", runs[0].x)
	}
	// Continuation lines return to the left indent, not past the bullet.
	if next := lineRuns(lines[1], 50+10); next[0].x != 60 {
		t.Fatalf("second line at x=%.2f, want 60", next[0].x)
	}
}

func TestImageHeightFromAspectRatio(t *testing.T) {
	r := newTestRenderer(t)
	it, err := r.buildImage(cvpdf.Image{Name: "wide", Data: pngBytes(t, 4, 2), Format: cvpdf.ImagePNG, Width: 100})
	if err != nil {
		t.Fatalf("build image: %v", err)
	}
	if got := it.height(300); got < 49.99 || got > 50.01 {
		t.Fatalf("height = %.3f, want 50", got)
	}
	if got := it.naturalWidth(300); got != 100 {
		t.Fatalf("natural width = %.3f, want 100", got)
	}
	if _, _, ok := it.split(300, 10); ok {
		t.Fatalf("images never split")
	}
}

func TestTableColumns(t *testing.T) {
	r := newTestRenderer(t)
	it, err := r.buildTable(cvpdf.Table{
		Rows:      [][]cvpdf.Cell{{{}, {}, {}}},
		ColWidths: []float64{100, 0},
	})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	table := it.(*tableItem)
	if diff := cmp.Diff([]float64{100, 150, 150}, table.columns(400)); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	if got := table.naturalWidth(400); got != 400 {
		t.Fatalf("flex table natural width = %.2f", got)
	}
	fixed := &tableItem{r: r, colWidths: []float64{80}, ncols: 1}
	if got := fixed.naturalWidth(400); got != 80 {
		t.Fatalf("fixed table natural width = %.2f", got)
	}
}

func TestTableSplitsBetweenRows(t *testing.T) {
	r := newTestRenderer(t)
	row := []cvpdf.Cell{{Blocks: []cvpdf.Block{cvpdf.Spacer{Height: 30}}}}
	it, err := r.buildTable(cvpdf.Table{Rows: [][]cvpdf.Cell{row, row, row}, Padding: cvpdf.Padding{Top: 5, Bottom: 5}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	if got := it.height(300); got != 120 {
		t.Fatalf("height = %.2f, want 120", got)
	}
	head, tail, ok := it.split(300, 90)
	if !ok || tail == nil {
		t.Fatalf("expected a split")
	}
	if head.height(300) != 80 || tail.height(300) != 40 {
		t.Fatalf("split heights %.2f/%.2f", head.height(300), tail.height(300))
	}
	if _, _, ok := it.split(300, 30); ok {
		t.Fatalf("expected no split when the first row does not fit")
	}
}

func TestShrinkCellScalesToFrame(t *testing.T) {
	r := newTestRenderer(t)
	it, err := r.buildTable(tallCell(true))
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	table := it.(*tableItem)
	scale, h := table.cellLayout(table.rows[0][0], r.frame.width)
	if scale >= 1 {
		t.Fatalf("expected scale below 1, got %.3f", scale)
	}
	if h > r.frame.height()+epsilon {
		t.Fatalf("shrunk height %.2f exceeds frame %.2f", h, r.frame.height())
	}
}

func TestSpacerClipsAtPageEnd(t *testing.T) {
	head, tail, ok := spacerItem{h: 50}.split(100, 20)
	if !ok || tail != nil {
		t.Fatalf("expected spacer to clip without remainder")
	}
	if got := head.height(100); got != 20 {
		t.Fatalf("clipped height = %.2f", got)
	}
}

func TestPaperSizeByName(t *testing.T) {
	got, ok := PaperSizeByName(" letter ")
	if !ok || got != LetterSize {
		t.Fatalf("PaperSizeByName(letter) = %+v, %v", got, ok)
	}
	if _, ok := PaperSizeByName("A3"); ok {
		t.Fatalf("expected A3 to be unknown")
	}
	if diff := cmp.Diff([]string{"A4", "A5", "Letter", "Legal"}, PaperSizeNames()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFontSetResolve(t *testing.T) {
	set := fontSet{refs: map[string]fontRef{"cv-regular": {family: "cv-cv-regular", utf8: true}}}
	ref, err := set.resolve("Helvetica-Bold")
	if err != nil || ref.style != "B" {
		t.Fatalf("resolve core bold = %+v, %v", ref, err)
	}
	if ref, err := set.resolve("CV-Regular"); err != nil || !ref.utf8 {
		t.Fatalf("resolve registered = %+v, %v", ref, err)
	}
	if _, err := set.resolve("Papyrus"); err == nil {
		t.Fatalf("expected unknown font error")
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := DefaultConfig()
	applyConfig(&cfg, Config{PageSize: "Letter", DisableCompression: true})
	if cfg.PageSize != "Letter" || !cfg.DisableCompression {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Margin != cvpdf.MM(18) || cfg.Creator != "cvpdf" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
