package jsonld

import "testing"

func TestAnalyzeLiveUpdatesFrequency(t *testing.T) {
	// Updates at 08:00, 08:20, 08:50: gaps of 20 and 30 minutes.
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"datePublished": "2024-05-01T07:55:00Z",
		"dateModified": "2024-05-01T08:50:00Z",
		"liveBlogUpdate": [
			{"@type": "BlogPosting", "datePublished": "2024-05-01T08:00:00Z"},
			{"@type": "BlogPosting", "datePublished": "2024-05-01T08:20:00Z"},
			{"@type": "BlogPosting", "datePublished": "2024-05-01T08:50:00Z"}
		]
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.UpdateCount != 3 {
		t.Errorf("UpdateCount = %d, want 3", sum.UpdateCount)
	}
	if sum.AverageIntervalMinutes != 25.0 {
		t.Errorf("AverageIntervalMinutes = %v, want 25.0", sum.AverageIntervalMinutes)
	}
	if sum.CreatedAt != "2024-05-01T07:55:00" {
		t.Errorf("CreatedAt = %q, want %q", sum.CreatedAt, "2024-05-01T07:55:00")
	}
	if sum.LastModifiedAt != "2024-05-01T08:50:00" {
		t.Errorf("LastModifiedAt = %q, want %q", sum.LastModifiedAt, "2024-05-01T08:50:00")
	}
}

func TestAnalyzeLiveUpdatesSubMinutePrecision(t *testing.T) {
	// Gaps of 10 and 15 minutes average to 12.5.
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"liveBlogUpdate": [
			{"datePublished": "2024-05-01T09:00:00Z"},
			{"datePublished": "2024-05-01T09:10:00Z"},
			{"datePublished": "2024-05-01T09:25:00Z"}
		]
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.AverageIntervalMinutes != 12.5 {
		t.Errorf("AverageIntervalMinutes = %v, want 12.5", sum.AverageIntervalMinutes)
	}
}

func TestAnalyzeLiveUpdatesCountsUnsortableEntries(t *testing.T) {
	// Three discovered entries, only two sortable: the count keeps all
	// three while the mean uses the sortable pair.
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"liveBlogUpdate": [
			{"datePublished": "2024-05-01T10:00:00Z"},
			{"datePublished": "momentarily"},
			{"datePublished": "2024-05-01T10:08:00Z"}
		]
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.UpdateCount != 3 {
		t.Errorf("UpdateCount = %d, want raw entry count 3", sum.UpdateCount)
	}
	if sum.AverageIntervalMinutes != 8.0 {
		t.Errorf("AverageIntervalMinutes = %v, want 8.0", sum.AverageIntervalMinutes)
	}
}

func TestAnalyzeLiveUpdatesSingleObjectNormalized(t *testing.T) {
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"liveBlogUpdate": {"datePublished": "2024-05-01T11:00:00Z"}
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.UpdateCount != 1 {
		t.Errorf("UpdateCount = %d, want 1", sum.UpdateCount)
	}
	if sum.AverageIntervalMinutes != 0 {
		t.Errorf("AverageIntervalMinutes = %v, want 0 below two events", sum.AverageIntervalMinutes)
	}
}

func TestAnalyzeLiveUpdatesModifiedDateFallbackPerEntry(t *testing.T) {
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"liveBlogUpdate": [
			{"datePublished": "2024-05-01T12:00:00Z"},
			{"dateModified": "2024-05-01T12:30:00Z"}
		]
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.AverageIntervalMinutes != 30.0 {
		t.Errorf("AverageIntervalMinutes = %v, want 30.0 using the entry's dateModified", sum.AverageIntervalMinutes)
	}
}

func TestAnalyzeLiveUpdatesUnsortedInput(t *testing.T) {
	// Discovery order is not chronological; intervals come from the
	// sorted sequence.
	v := mustParse(t, `{
		"@type": "LiveBlogPosting",
		"liveBlogUpdate": [
			{"datePublished": "2024-05-01T14:40:00Z"},
			{"datePublished": "2024-05-01T14:00:00Z"},
			{"datePublished": "2024-05-01T14:20:00Z"}
		]
	}`)

	sum := AnalyzeLiveUpdates([]*Value{v})
	if sum.AverageIntervalMinutes != 20.0 {
		t.Errorf("AverageIntervalMinutes = %v, want 20.0 after sorting", sum.AverageIntervalMinutes)
	}
}

func TestAnalyzeLiveUpdatesFallbackDates(t *testing.T) {
	// No live blog on the page: the last dates seen anywhere still fill
	// the summary.
	blocks := []*Value{
		mustParse(t, `{"@type": "WebPage", "datePublished": "2024-04-01T06:00:00Z"}`),
		mustParse(t, `{"@type": "NewsArticle",
			"datePublished": "2024-04-02T07:00:00Z",
			"dateModified": "2024-04-02T09:15:00Z"}`),
	}

	sum := AnalyzeLiveUpdates(blocks)
	if sum.CreatedAt != "2024-04-02T07:00:00" {
		t.Errorf("CreatedAt = %q, want last-seen fallback", sum.CreatedAt)
	}
	if sum.LastModifiedAt != "2024-04-02T09:15:00" {
		t.Errorf("LastModifiedAt = %q, want last-seen fallback", sum.LastModifiedAt)
	}
	if sum.UpdateCount != 0 || sum.AverageIntervalMinutes != 0 {
		t.Errorf("summary = %+v, want zero update stats without a live blog", sum)
	}
}

func TestAnalyzeLiveUpdatesEmptyBlocks(t *testing.T) {
	sum := AnalyzeLiveUpdates(nil)
	if sum != (FrequencySummary{}) {
		t.Errorf("summary = %+v, want zero value", sum)
	}
}

func TestAnalyzeLiveUpdatesMultiTokenType(t *testing.T) {
	v := mustParse(t, `{
		"@type": ["LiveBlogPosting", "NewsArticle"],
		"liveBlogUpdate": [{"datePublished": "2024-05-01T15:00:00Z"}]
	}`)

	if sum := AnalyzeLiveUpdates([]*Value{v}); sum.UpdateCount != 1 {
		t.Errorf("UpdateCount = %d, want live blog matched through a multi-token type", sum.UpdateCount)
	}
}
