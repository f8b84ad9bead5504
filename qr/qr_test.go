package qr

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"
)

func decode(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatalf("binary bitmap: %v", err)
	}
	res, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatalf("decode qr: %v", err)
	}
	return res.GetText()
}

func TestEncodeRoundTrip(t *testing.T) {
	const url = "https://cv.example.com/"
	data, err := DefaultEncoder().Encode(url)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("expected PNG output, got %q", data[:8])
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	if got := decode(t, img); got != url {
		t.Fatalf("decoded %q, want %q", got, url)
	}
}

func TestImageGeometry(t *testing.T) {
	enc := DefaultEncoder()
	img, err := enc.Image("https://cv.example.com/")
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Fatalf("expected square image, got %v", b)
	}
	if b.Dx()%enc.ModuleSize != 0 {
		t.Fatalf("size %d not a multiple of module size %d", b.Dx(), enc.ModuleSize)
	}
	// Version 2 is 25 modules wide; the URL fits in version 2 at level M.
	if want := (25 + 2*DefaultBorder) * DefaultModuleSize; b.Dx() != want {
		t.Fatalf("unexpected size: got %d want %d", b.Dx(), want)
	}
	// Quiet zone corner is white, first finder module is black.
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Fatalf("expected white quiet zone")
	}
	off := DefaultBorder * DefaultModuleSize
	if r, _, _, _ := img.At(off, off).RGBA(); r != 0 {
		t.Fatalf("expected black finder pattern at %d,%d", off, off)
	}
}

func TestImageMatchesModuleBitmap(t *testing.T) {
	const url = "https://cv.example.com/"
	enc := Encoder{Level: qrcode.Medium, ModuleSize: 5, Border: 3}
	img, err := enc.Image(url)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		t.Fatalf("qrcode: %v", err)
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()
	if want := (len(bitmap) + 2*enc.Border) * enc.ModuleSize; img.Bounds().Dx() != want {
		t.Fatalf("size: got %d want %d", img.Bounds().Dx(), want)
	}
	for my, row := range bitmap {
		for mx, set := range row {
			x := (mx+enc.Border)*enc.ModuleSize + enc.ModuleSize/2
			y := (my+enc.Border)*enc.ModuleSize + enc.ModuleSize/2
			r, _, _, _ := img.At(x, y).RGBA()
			if dark := r < 0x8000; dark != set {
				t.Fatalf("module %d,%d: dark=%v want %v", mx, my, dark, set)
			}
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	enc := DefaultEncoder()
	if _, err := enc.Encode(""); err == nil {
		t.Fatalf("expected error for empty content")
	}
	_, err := enc.Encode(strings.Repeat("a", 4000))
	if err == nil {
		t.Fatalf("expected error for oversized content")
	}
	if !strings.HasPrefix(err.Error(), "qr encode:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHigherLevelStillDecodes(t *testing.T) {
	enc := Encoder{Level: qrcode.Highest, ModuleSize: 4, Border: 4}
	img, err := enc.Image("https://github.com/example/curriculum-vitae")
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if got := decode(t, img); got != "https://github.com/example/curriculum-vitae" {
		t.Fatalf("decoded %q", got)
	}
}
