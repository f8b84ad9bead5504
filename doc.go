// Package cvpdf assembles a curriculum vitae into a flowable block list.
//
// The package is the pure half of the generator: it maps a Content record
// and a StyleSheet to a Document made of Paragraph, Spacer, Table and Image
// blocks. Pagination and PDF serialization live in the pdf subpackage, and
// QR encoding lives in the qr subpackage.
//
// Core properties:
//   - Deterministic output for a given record, style sheet and clock
//   - Empty sections are omitted, never rendered as bare headings
//   - Experience entries and links keep their input order
//   - Optional headshot beneath the QR code in the header
//
// Example:
//
//	cfg := cvpdf.DefaultConfig()
//	styles, err := cvpdf.DefaultStyles(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	code, err := qr.DefaultEncoder().Encode(cfg.LandingURL)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc := cvpdf.Assemble(cvpdf.SampleContent(cfg), styles,
//		cvpdf.WithQRCode(code, cfg.LandingURL),
//		cvpdf.WithGeneratedAt(time.Now()),
//	)
//	err = pdf.Render(pdf.RenderRequest{Document: doc, Writer: out})
package cvpdf
