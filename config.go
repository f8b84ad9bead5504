package cvpdf

// Compile-time defaults. A zero-argument run uses exactly these.
const (
	DefaultLandingURL   = "https://cv.example.com/"
	DefaultPDFURL       = "https://cv.example.com/Robin_Alders_CV.pdf"
	DefaultLinkedInURL  = "https://www.linkedin.com/in/example-robin-alders/"
	DefaultGitHubURL    = "https://github.com/example/curriculum-vitae"
	DefaultOutputPath   = "Robin_Alders_CV.pdf"
	DefaultAccent       = "#0B7A75"
	DefaultBaseFont     = "Helvetica"
	DefaultBoldFont     = "Helvetica-Bold"
	DefaultHeadshotPath = ""
	DefaultPageSize     = "A4"
	DefaultGenerator    = "Go"
)

// Config holds generator settings.
type Config struct {
	LandingURL   string
	PDFURL       string
	LinkedInURL  string
	GitHubURL    string
	OutputPath   string
	Accent       string
	BaseFont     string
	BoldFont     string
	HeadshotPath string
	PageSize     string
	Margin       float64
	ImageSize    float64
	Copyright    string
	// Generator names the tool in the footer and the closing note.
	Generator string
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		LandingURL:   DefaultLandingURL,
		PDFURL:       DefaultPDFURL,
		LinkedInURL:  DefaultLinkedInURL,
		GitHubURL:    DefaultGitHubURL,
		OutputPath:   DefaultOutputPath,
		Accent:       DefaultAccent,
		BaseFont:     DefaultBaseFont,
		BoldFont:     DefaultBoldFont,
		HeadshotPath: DefaultHeadshotPath,
		PageSize:     DefaultPageSize,
		Margin:       MM(18),
		ImageSize:    MM(28),
		Generator:    DefaultGenerator,
	}
}

// ApplyConfig copies every non-zero field of src into dst.
func ApplyConfig(dst *Config, src Config) {
	if src.LandingURL != "" {
		dst.LandingURL = src.LandingURL
	}
	if src.PDFURL != "" {
		dst.PDFURL = src.PDFURL
	}
	if src.LinkedInURL != "" {
		dst.LinkedInURL = src.LinkedInURL
	}
	if src.GitHubURL != "" {
		dst.GitHubURL = src.GitHubURL
	}
	if src.OutputPath != "" {
		dst.OutputPath = src.OutputPath
	}
	if src.Accent != "" {
		dst.Accent = src.Accent
	}
	if src.BaseFont != "" {
		dst.BaseFont = src.BaseFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if src.HeadshotPath != "" {
		dst.HeadshotPath = src.HeadshotPath
	}
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.ImageSize > 0 {
		dst.ImageSize = src.ImageSize
	}
	if src.Copyright != "" {
		dst.Copyright = src.Copyright
	}
	if src.Generator != "" {
		dst.Generator = src.Generator
	}
}
