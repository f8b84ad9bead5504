package cvpdf

// Content is the record a CV is generated from. It is read once per run and
// never modified.
type Content struct {
	Name       string
	Title      string
	Location   string
	Email      string
	Phone      string
	Summary    string
	Experience []Experience
	Tech       string
	Providers  string
	Education  []string
	Languages  string
	// Links are shown in slice order. Entries with an empty URL are skipped.
	Links []Link
}

// Experience is one employment entry.
type Experience struct {
	Company string
	Role    string
	Dates   string
	Bullets []string
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}
