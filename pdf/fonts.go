package pdf

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/afero"
)

// ErrUnknownFont reports a font name that is neither a core PDF font nor
// registered in Config.Fonts.
var ErrUnknownFont = errors.New("unknown font")

// fontRef selects a face in fpdf.
type fontRef struct {
	family string
	style  string
	utf8   bool
}

var coreFonts = map[string]fontRef{
	"helvetica":             {family: "Helvetica"},
	"helvetica-bold":        {family: "Helvetica", style: "B"},
	"helvetica-oblique":     {family: "Helvetica", style: "I"},
	"helvetica-boldoblique": {family: "Helvetica", style: "BI"},
	"times":                 {family: "Times"},
	"times-roman":           {family: "Times"},
	"times-bold":            {family: "Times", style: "B"},
	"times-italic":          {family: "Times", style: "I"},
	"times-bolditalic":      {family: "Times", style: "BI"},
	"courier":               {family: "Courier"},
	"courier-bold":          {family: "Courier", style: "B"},
	"courier-oblique":       {family: "Courier", style: "I"},
	"courier-boldoblique":   {family: "Courier", style: "BI"},
}

func isCoreFont(name string) bool {
	_, ok := coreFonts[strings.ToLower(name)]
	return ok
}

// fontSet resolves style font names to fpdf faces.
type fontSet struct {
	refs map[string]fontRef
}

// registerFonts loads every TTF in fonts into pdf. Registration order is
// sorted by name so the output does not depend on map iteration.
func registerFonts(pdf *fpdf.Fpdf, fsys afero.Fs, fonts map[string]string) (fontSet, error) {
	set := fontSet{refs: make(map[string]fontRef, len(fonts))}
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := fonts[name]
		if isCoreFont(name) {
			return fontSet{}, fmt.Errorf("font %q shadows a core font", name)
		}
		if err := ensureFont(fsys, path); err != nil {
			return fontSet{}, fmt.Errorf("font %q: %w", name, err)
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fontSet{}, fmt.Errorf("font %q: %w", name, err)
		}
		family := "cv-" + strings.ToLower(name)
		pdf.AddUTF8FontFromBytes(family, "", data)
		if err := pdf.Error(); err != nil {
			return fontSet{}, fmt.Errorf("font %q: %w", name, err)
		}
		set.refs[strings.ToLower(name)] = fontRef{family: family, utf8: true}
	}
	return set, nil
}

func (s fontSet) resolve(name string) (fontRef, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ref, ok := s.refs[key]; ok {
		return ref, nil
	}
	if ref, ok := coreFonts[key]; ok {
		return ref, nil
	}
	return fontRef{}, fmt.Errorf("%w %q", ErrUnknownFont, name)
}

func ensureFont(fsys afero.Fs, path string) error {
	if path == "" {
		return fmt.Errorf("font path is empty")
	}
	if strings.ToLower(filepath.Ext(path)) != ".ttf" {
		return fmt.Errorf("expected .ttf font file")
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return fmt.Errorf("font missing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("font path is a directory")
	}
	return nil
}
