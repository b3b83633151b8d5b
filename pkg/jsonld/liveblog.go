package jsonld

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
)

const liveBlogType = "LiveBlogPosting"

// FrequencySummary describes the update cadence of live-updating content.
// UpdateCount counts every discovered update entry, including entries whose
// dates never resolve to a sortable instant, so it can exceed the number of
// events that fed the interval mean.
type FrequencySummary struct {
	AverageIntervalMinutes float64
	UpdateCount            int
	CreatedAt              string
	LastModifiedAt         string
}

// AnalyzeLiveUpdates scans blocks for live-blog coverage, collects update
// timestamps, and computes the mean gap between consecutive updates in
// minutes. When no LiveBlogPosting node exists, the last publication and
// modification dates seen anywhere still populate CreatedAt and
// LastModifiedAt so the summary carries temporal context whenever any date
// exists.
func AnalyzeLiveUpdates(blocks []*Value) FrequencySummary {
	var summary FrequencySummary
	var events []time.Time
	var fallbackPublished, fallbackModified string
	liveFound := false

	for _, block := range blocks {
		Walk(block, true, func(obj *Value, _ bool) {
			if d := obj.Get("datePublished"); d.IsString() {
				fallbackPublished = d.Str()
			}
			if d := obj.Get("dateModified"); d.IsString() {
				fallbackModified = d.Str()
			}

			if !lo.Contains(TypeTokens(obj), liveBlogType) {
				return
			}
			liveFound = true

			// Entity-level dates: the last live-blog node wins.
			if d := obj.Get("datePublished"); d.IsString() {
				summary.CreatedAt = ResolveDate(d.Str()).Display
			}
			if d := obj.Get("dateModified"); d.IsString() {
				summary.LastModifiedAt = ResolveDate(d.Str()).Display
			}

			for _, entry := range updateEntries(obj.Get("liveBlogUpdate")) {
				summary.UpdateCount++
				raw := ""
				if d := entry.Get("datePublished"); d.IsString() && d.Str() != "" {
					raw = d.Str()
				} else if d := entry.Get("dateModified"); d.IsString() {
					raw = d.Str()
				}
				if raw == "" {
					continue
				}
				if instant, ok := ResolveDate(raw).Instant(); ok {
					events = append(events, instant)
				}
			}
		})
	}

	if !liveFound {
		if fallbackPublished != "" {
			summary.CreatedAt = ResolveDate(fallbackPublished).Display
		}
		if fallbackModified != "" {
			summary.LastModifiedAt = ResolveDate(fallbackModified).Display
		}
	}

	summary.AverageIntervalMinutes = meanGapMinutes(events)
	return summary
}

// updateEntries normalizes the liveBlogUpdate property: a single update
// object becomes a one-element list, arrays keep only their object entries.
func updateEntries(v *Value) []*Value {
	switch v.Kind() {
	case KindObject:
		return []*Value{v}
	case KindArray:
		return lo.Filter(v.Items(), func(item *Value, _ int) bool {
			return item.IsObject()
		})
	}
	return nil
}

// meanGapMinutes sorts events chronologically and averages the consecutive
// gaps with sub-minute precision, rounded to one decimal. Fewer than two
// events yield 0.
func meanGapMinutes(events []time.Time) float64 {
	if len(events) < 2 {
		return 0
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Before(events[j]) })

	var total float64
	for i := 1; i < len(events); i++ {
		total += events[i].Sub(events[i-1]).Minutes()
	}
	mean := total / float64(len(events)-1)
	return math.Round(mean*10) / 10
}
