package jsonld

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyRootsAndNested(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantRoots  []string
		wantNested []string
	}{
		{
			name:       "single typed block",
			raw:        `{"@type": "NewsArticle"}`,
			wantRoots:  []string{"NewsArticle"},
			wantNested: []string{},
		},
		{
			name: "graph members are roots",
			raw: `{"@graph": [
				{"@type": "NewsArticle"},
				{"@type": "Organization"},
				{"@type": "WebSite"}
			]}`,
			wantRoots:  []string{"NewsArticle", "Organization", "WebSite"},
			wantNested: []string{},
		},
		{
			name: "property descent is nested",
			raw: `{"@type": "Article", "video": {
				"@type": "VideoObject",
				"thumbnail": {"@type": "ImageObject"}
			}}`,
			wantRoots:  []string{"Article"},
			wantNested: []string{"VideoObject", "ImageObject"},
		},
		{
			name: "same token in both positions",
			raw: `{"@graph": [
				{"@type": "ImageObject"},
				{"@type": "NewsArticle", "image": {"@type": "ImageObject"}}
			]}`,
			wantRoots:  []string{"ImageObject", "NewsArticle"},
			wantNested: []string{"ImageObject"},
		},
		{
			name:       "multi-token type declaration keeps order",
			raw:        `{"@type": ["ReportageNewsArticle", "NewsArticle"]}`,
			wantRoots:  []string{"ReportageNewsArticle", "NewsArticle"},
			wantNested: []string{},
		},
		{
			name:       "no type declarations anywhere",
			raw:        `{"headline": "quiet page", "keywords": ["a", "b"]}`,
			wantRoots:  []string{},
			wantNested: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := Classify([]*Value{mustParse(t, tt.raw)})
			if diff := cmp.Diff(tt.wantRoots, cl.Roots); diff != "" {
				t.Errorf("Roots mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantNested, cl.Nested); diff != "" {
				t.Errorf("Nested mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyDedupKeepsFirstOccurrence(t *testing.T) {
	// Discovery order A, B, A, C must come out as A, B, C.
	blocks := []*Value{
		mustParse(t, `{"@type": "Article"}`),
		mustParse(t, `{"@type": "BreakingNews"}`),
		mustParse(t, `{"@type": "Article"}`),
		mustParse(t, `{"@type": "Chart"}`),
	}

	cl := Classify(blocks)
	want := []string{"Article", "BreakingNews", "Chart"}
	if diff := cmp.Diff(want, cl.Roots); diff != "" {
		t.Errorf("dedup order mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyDatesFirstSeenWins(t *testing.T) {
	blocks := []*Value{
		mustParse(t, `{"@type": "WebPage", "datePublished": "2024-01-05T08:00:00Z"}`),
		mustParse(t, `{"@type": "NewsArticle",
			"datePublished": "2024-02-01T09:30:00+01:00",
			"dateModified": "2024-02-01T11:00:00+01:00"}`),
	}

	cl := Classify(blocks)
	if cl.PublishedAt != "2024-01-05T08:00:00" {
		t.Errorf("PublishedAt = %q, want first-seen %q", cl.PublishedAt, "2024-01-05T08:00:00")
	}
	if cl.ModifiedAt != "2024-02-01T11:00:00" {
		t.Errorf("ModifiedAt = %q, want %q", cl.ModifiedAt, "2024-02-01T11:00:00")
	}
}

func TestClassifyDateFromNestedNode(t *testing.T) {
	v := mustParse(t, `{"@type": "WebPage", "mainEntity": {
		"@type": "Article", "datePublished": "2023-12-24T18:45:10Z"
	}}`)

	cl := Classify([]*Value{v})
	if cl.PublishedAt != "2023-12-24T18:45:10" {
		t.Errorf("PublishedAt = %q, want date captured from nested node", cl.PublishedAt)
	}
}

func TestClassifyUnresolvableDatePassesThrough(t *testing.T) {
	v := mustParse(t, `{"@type": "Article", "datePublished": "yesterday afternoon"}`)

	cl := Classify([]*Value{v})
	if cl.PublishedAt != "yesterday afternoon" {
		t.Errorf("PublishedAt = %q, want raw passthrough", cl.PublishedAt)
	}
}

func TestTypeTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "bare string", raw: `{"@type": "NewsArticle"}`, want: []string{"NewsArticle"}},
		{name: "array", raw: `{"@type": ["A", "B"]}`, want: []string{"A", "B"}},
		{name: "array with junk members", raw: `{"@type": ["A", 7, null, "B"]}`, want: []string{"A", "B"}},
		{name: "missing", raw: `{"name": "x"}`, want: nil},
		{name: "non-string scalar", raw: `{"@type": 12}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeTokens(mustParse(t, tt.raw))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TypeTokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
