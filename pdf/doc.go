// Package pdf lays out cvpdf documents onto pages and serializes them as PDF.
//
// The engine flows blocks top to bottom inside the page frame. Paragraphs
// split between lines and tables between rows when they reach the bottom of
// a page; images never split. Shrink cells scale their content down to fit
// the frame. The document's footer decorator runs once per page.
//
// Example:
//
//	err := pdf.Render(pdf.RenderRequest{
//		Document: doc,
//		Writer:   outFile,
//		Config:   pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Core PDF fonts (Helvetica, Times, Courier and their bold/oblique faces)
// need no setup. Any other font name must be registered as a TTF file in
// Config.Fonts.
package pdf
