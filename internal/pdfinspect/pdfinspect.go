// Package pdfinspect reads rendered PDFs back for tests: extracted text,
// page counts and rasterized pages.
package pdfinspect

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"os/exec"
	"strconv"

	"github.com/ledongthuc/pdf"
)

// Text returns the plain text of every page, in page order.
func Text(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return buf.String(), nil
}

// PageCount returns the number of pages in data.
func PageCount(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return r.NumPage(), nil
}

// PDFToPPMCommand returns the pdftoppm command that rasterizes pdfPath to
// PNG files named prefix-N.png.
func PDFToPPMCommand(nicePath, pdfPath, prefix string, dpi int) *exec.Cmd {
	res := strconv.Itoa(dpi)
	if nicePath != "" {
		return exec.Command(nicePath, "-n", "10", "pdftoppm", "-png", "-r", res, pdfPath, prefix)
	}
	return exec.Command("pdftoppm", "-png", "-r", res, pdfPath, prefix)
}

// LoadPNG decodes the PNG at path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
