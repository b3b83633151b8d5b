// Package aggregate folds per-page classification rows into corpus-level
// coverage metrics.
package aggregate

import (
	"math"

	"github.com/samber/lo"
	"github.com/seoscope/schemascan/models"
)

// Signals is the per-page slice of a report that the dashboard cares about.
type Signals struct {
	RootTypes []string
	HasAuthor bool
}

// Dashboard summarizes structured-data coverage across a scan. Percentages
// are over every scanned page, failed fetches included, so the numbers
// reflect the corpus as requested rather than the pages that happened to
// respond.
type Dashboard struct {
	TotalPages     int     `yaml:"total_pages" json:"total_pages"`
	PctNewsArticle float64 `yaml:"pct_newsarticle" json:"pct_newsarticle"`
	PctArticle     float64 `yaml:"pct_article" json:"pct_article"`
	PctAuthor      float64 `yaml:"pct_author" json:"pct_author"`
	PctVideoObject float64 `yaml:"pct_videoobject" json:"pct_videoobject"`
	PctLiveBlog    float64 `yaml:"pct_liveblog" json:"pct_liveblog"`
}

// Map projects one page report onto its dashboard signals.
func Map(report models.PageReport) Signals {
	return Signals{
		RootTypes: report.Roots,
		HasAuthor: report.HasAuthor,
	}
}

// Reduce aggregates per-page signals into the dashboard. Root-type
// percentages count exact tokens in the page's root list, so "Article"
// does not match a page that only declares "NewsArticle".
func Reduce(signals []Signals) Dashboard {
	total := len(signals)
	hasRoot := func(token string) func(Signals) bool {
		return func(s Signals) bool { return lo.Contains(s.RootTypes, token) }
	}

	return Dashboard{
		TotalPages:     total,
		PctNewsArticle: percentage(lo.CountBy(signals, hasRoot("NewsArticle")), total),
		PctArticle:     percentage(lo.CountBy(signals, hasRoot("Article")), total),
		PctAuthor:      percentage(lo.CountBy(signals, func(s Signals) bool { return s.HasAuthor }), total),
		PctVideoObject: percentage(lo.CountBy(signals, hasRoot("VideoObject")), total),
		PctLiveBlog:    percentage(lo.CountBy(signals, hasRoot("LiveBlogPosting")), total),
	}
}

// FromReports is the Map+Reduce composition used by the report commands.
func FromReports(reports []models.PageReport) Dashboard {
	return Reduce(lo.Map(reports, func(r models.PageReport, _ int) Signals {
		return Map(r)
	}))
}

// percentage rounds n/total to one decimal place, as a 0-100 figure.
func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}
