package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/cvpdf"
	"pkt.systems/cvpdf/pdf"
	"pkt.systems/cvpdf/qr"
)

const (
	defaultWidth = 80
	minWrapWidth = 20

	regularFontName = "cv-regular"
	boldFontName    = "cv-bold"
)

func init() {
	version.SetDefaultModule("pkt.systems/cvpdf")
}

func main() {
	var (
		outPath     string
		headshot    string
		pageSize    string
		regularFont string
		boldFont    string
		outline     bool
		verbose     bool
		showVersion bool
	)

	defaults := cvpdf.DefaultConfig()
	flags := pflag.NewFlagSet("cvpdf", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", defaults.OutputPath, "Output PDF path, or - for stdout")
	flags.StringVar(&headshot, "headshot", defaults.HeadshotPath, "Headshot image (PNG, JPEG or WebP); a missing file is skipped")
	flags.StringVar(&pageSize, "page-size", defaults.PageSize, "Page size: "+strings.Join(pdf.PaperSizeNames(), ", "))
	flags.StringVar(&regularFont, "regular-font", "", "TTF path for the regular font (default Helvetica)")
	flags.StringVar(&boldFont, "bold-font", "", "TTF path for the bold font (default Helvetica-Bold)")
	flags.BoolVar(&outline, "outline", false, "Print the document outline instead of rendering")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: cvpdf [flags]\n")
		fmt.Fprintln(os.Stderr, "\nWith no flags the CV is written to "+defaults.OutputPath+".")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		os.Exit(2)
	}
	if _, ok := pdf.PaperSizeByName(pageSize); !ok {
		fmt.Fprintf(os.Stderr, "unknown page size %q (supported: %s)\n", pageSize, strings.Join(pdf.PaperSizeNames(), ", "))
		os.Exit(2)
	}

	cfg := defaults
	cvpdf.ApplyConfig(&cfg, cvpdf.Config{
		OutputPath:   outPath,
		HeadshotPath: headshot,
		PageSize:     pageSize,
	})
	fonts := make(map[string]string)
	if regularFont != "" {
		fonts[regularFontName] = normalizePath(regularFont)
		cfg.BaseFont = regularFontName
	}
	if boldFont != "" {
		fonts[boldFontName] = normalizePath(boldFont)
		cfg.BoldFont = boldFontName
	}
	if cfg.OutputPath == "-" && !outline && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}

	if err := run(options{
		cfg:     cfg,
		content: cvpdf.SampleContent(cfg),
		fs:      afero.NewOsFs(),
		stdout:  os.Stdout,
		now:     time.Now,
		logger:  newLogger(os.Stderr, verbose),
		fonts:   fonts,
		outline: outline,
		width:   terminalWidth(defaultWidth),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cfg     cvpdf.Config
	content cvpdf.Content
	fs      afero.Fs
	stdout  io.Writer
	now     func() time.Time
	logger  *slog.Logger
	fonts   map[string]string
	outline bool
	width   int
}

// run encodes the QR code, assembles the CV and writes either the PDF or
// its outline.
func run(opts options) error {
	start := opts.now()
	log := opts.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	cfg := opts.cfg

	doc, err := buildDocument(opts, log, start)
	if err != nil {
		return err
	}
	if opts.outline {
		return writeOutline(opts.stdout, doc, opts.width)
	}

	log.Info("Rendering PDF", "page_size", cfg.PageSize, "blocks", len(doc.Blocks))
	var buf bytes.Buffer
	if err := pdf.Render(pdf.RenderRequest{
		Document: doc,
		Writer:   &buf,
		Config: pdf.Config{
			PageSize: cfg.PageSize,
			Margin:   cfg.Margin,
			Fonts:    opts.fonts,
			FS:       opts.fs,
		},
		Logger: log,
	}); err != nil {
		return err
	}
	if err := writeOutput(opts.fs, opts.stdout, cfg.OutputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("Wrote PDF", "path", cfg.OutputPath, "bytes", buf.Len(), "time_taken", opts.now().Sub(start))
	return nil
}

func buildDocument(opts options, log *slog.Logger, now time.Time) (cvpdf.Document, error) {
	cfg := opts.cfg
	log.Info("Encoding QR", "url", cfg.LandingURL)
	code, err := qr.DefaultEncoder().Encode(cfg.LandingURL)
	if err != nil {
		return cvpdf.Document{}, err
	}

	var headshot *cvpdf.Headshot
	if cfg.HeadshotPath != "" {
		log.Info("Loading headshot", "path", cfg.HeadshotPath)
		headshot, err = cvpdf.LoadHeadshot(opts.fs, cfg.HeadshotPath, cvpdf.HeadshotPixels)
		if err != nil {
			return cvpdf.Document{}, err
		}
		if headshot == nil {
			log.Warn("Headshot not found, continuing without it", "path", cfg.HeadshotPath)
		}
	}

	styles, err := cvpdf.DefaultStyles(cfg)
	if err != nil {
		return cvpdf.Document{}, fmt.Errorf("styles: %w", err)
	}
	log.Info("Assembling document")
	return cvpdf.Assemble(opts.content, styles,
		cvpdf.WithQRCode(code, cfg.LandingURL),
		cvpdf.WithHeadshot(headshot),
		cvpdf.WithGeneratedAt(now),
		cvpdf.WithImageSize(cfg.ImageSize),
		cvpdf.WithMargin(cfg.Margin),
		cvpdf.WithCopyright(cfg.Copyright),
		cvpdf.WithGenerator(cfg.Generator),
	), nil
}

func writeOutline(w io.Writer, doc cvpdf.Document, width int) error {
	for _, line := range cvpdf.Outline(doc) {
		pad := uint(2 * line.Depth)
		limit := max(width-int(pad), minWrapWidth)
		// wordwrap may overshoot by one at a hyphen breakpoint.
		text := wrap.String(wordwrap.String(line.Text, limit), limit)
		if _, err := fmt.Fprintln(w, indent.String(text, pad)); err != nil {
			return fmt.Errorf("write outline: %w", err)
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := slogcolor.DefaultOptions
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	opts.Level = slog.LevelInfo
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slogcolor.NewHandler(w, opts))
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// writeOutput writes data to path through fsys, or to stdout when path is
// "-". Missing parent directories are created.
func writeOutput(fsys afero.Fs, stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path is empty")
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fsys, clean, data, 0o644)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
