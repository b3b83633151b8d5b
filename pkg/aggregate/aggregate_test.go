package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/seoscope/schemascan/models"
)

func TestReduceDashboard(t *testing.T) {
	signals := []Signals{
		{RootTypes: []string{"NewsArticle"}, HasAuthor: true},
		{RootTypes: []string{"Article", "VideoObject"}, HasAuthor: true},
		{RootTypes: []string{"LiveBlogPosting"}, HasAuthor: false},
		{RootTypes: nil, HasAuthor: false}, // failed fetch still counts
	}

	got := Reduce(signals)
	want := Dashboard{
		TotalPages:     4,
		PctNewsArticle: 25.0,
		PctArticle:     25.0,
		PctAuthor:      50.0,
		PctVideoObject: 25.0,
		PctLiveBlog:    25.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceExactTokenMatch(t *testing.T) {
	signals := []Signals{
		{RootTypes: []string{"NewsArticle"}},
		{RootTypes: []string{"NewsArticle", "WebPage"}},
		{RootTypes: []string{"ReportageNewsArticle"}},
	}

	got := Reduce(signals)
	if got.PctNewsArticle != 66.7 {
		t.Errorf("PctNewsArticle = %v, want 66.7 (substring types must not match)", got.PctNewsArticle)
	}
	if got.PctArticle != 0 {
		t.Errorf("PctArticle = %v, want 0 (no page declares a bare Article root)", got.PctArticle)
	}
}

func TestReduceRounding(t *testing.T) {
	// 1 of 3 pages: 33.333...% rounds to 33.3.
	signals := []Signals{
		{RootTypes: []string{"Article"}},
		{RootTypes: []string{"WebPage"}},
		{RootTypes: []string{"WebPage"}},
	}
	if got := Reduce(signals).PctArticle; got != 33.3 {
		t.Errorf("PctArticle = %v, want 33.3", got)
	}
}

func TestReduceEmpty(t *testing.T) {
	got := Reduce(nil)
	if got.TotalPages != 0 || got.PctAuthor != 0 {
		t.Errorf("Reduce(nil) = %+v, want zero dashboard", got)
	}
}

func TestFromReports(t *testing.T) {
	reports := []models.PageReport{
		{URL: "https://a.example", Roots: []string{"NewsArticle"}, HasAuthor: true},
		{URL: "https://b.example", Roots: []string{"WebPage"}},
	}

	got := FromReports(reports)
	if got.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", got.TotalPages)
	}
	if got.PctNewsArticle != 50.0 {
		t.Errorf("PctNewsArticle = %v, want 50.0", got.PctNewsArticle)
	}
	if got.PctAuthor != 50.0 {
		t.Errorf("PctAuthor = %v, want 50.0", got.PctAuthor)
	}
}
