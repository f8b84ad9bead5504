package cvpdf

// SampleContent returns the built-in CV record. The person is fictional; the
// link targets come from cfg.
func SampleContent(cfg Config) Content {
	return Content{
		Name:     "Robin Alders",
		Title:    "Sports Analytics · Tracking & Modeling",
		Location: "Utrecht, NL",
		Email:    "robin.alders@example.com",
		Phone:    "+31 6 00 00 00 00",
		Summary: "Sports data lead focused on tracking analytics, model design, and delivery. " +
			"Builds end-to-end pipelines and coach-facing tools; values reproducibility and measurable impact.",
		Experience: []Experience{
			{
				Company: "Northfield Analytics",
				Role:    "Head of Performance Data",
				Dates:   "2021–present",
				Bullets: []string{
					"Leads analytics delivery for professional clubs across recruitment and performance.",
					"Built tracking×event fusion workflows and physical metrics reporting.",
					"Improved communication through concise visuals and field-relevant language.",
				},
			},
			{
				Company: "FC Rivermouth",
				Role:    "Analytics Lead",
				Dates:   "2019–2021",
				Bullets: []string{
					"Built the analytics function across player evaluation and match analysis.",
					"Delivered coach-facing products and recruitment decision support.",
				},
			},
			{
				Company: "Gridline",
				Role:    "Data Scientist & Lead Developer",
				Dates:   "2017–2019",
				Bullets: []string{
					"Led data science projects and productized analytics pipelines.",
				},
			},
			{
				Company: "Quantor Consulting",
				Role:    "Consultant",
				Dates:   "2014–2017",
				Bullets: []string{
					"Delivered modeling and analysis for sports and business problems.",
				},
			},
			{
				Company: "Utrecht University",
				Role:    "Research Assistant",
				Dates:   "2012–2014",
				Bullets: []string{
					"Quantitative research support and analysis.",
				},
			},
		},
		Tech: "Go, Python (pandas, scikit-learn, xgboost), SQL, R, Kalman filters, " +
			"ETL, model validation, experiment design",
		Providers: "Event: Opta, StatsBomb, Wyscout · " +
			"Tracking: Second Spectrum, SkillCorner · " +
			"GPS: STATSports, Catapult",
		Education: []string{
			"MSc Econometrics — Utrecht University (2014)",
			"BSc Econometrics & Operations Research — Utrecht University (2012)",
		},
		Languages: "Dutch (native), English (C2)",
		Links: []Link{
			{Label: "PDF", URL: cfg.PDFURL},
			{Label: "LinkedIn", URL: cfg.LinkedInURL},
			{Label: "GitHub", URL: cfg.GitHubURL},
		},
	}
}
