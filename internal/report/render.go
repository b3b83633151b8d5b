package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/seoscope/schemascan/models"
	"github.com/seoscope/schemascan/pkg/aggregate"
	dbpkg "github.com/seoscope/schemascan/pkg/db"
)

func renderScansTable(scans []dbpkg.Scan) {
	fmt.Printf("%-6s %-20s %-6s %-8s %-8s %-28s %-24s\n",
		"ID", "Created", "URLs", "Success", "Failed", "Checks", "Summary Dir")
	fmt.Println(strings.Repeat("-", 104))

	for _, s := range scans {
		checks := s.ContainsChecks
		if checks == "" {
			checks = "(none)"
		}
		fmt.Printf("%-6d %-20s %-6d %-8d %-8d %-28s %-24s\n",
			s.ScanID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.URLCount,
			s.SuccessCount,
			s.FailedCount,
			checks,
			s.SummaryDir,
		)
	}
}

func renderDashboard(dash aggregate.Dashboard) {
	fmt.Printf("\nAdoption across %d pages:\n", dash.TotalPages)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-22s %6.1f%%\n", "NewsArticle", dash.PctNewsArticle)
	fmt.Printf("%-22s %6.1f%%\n", "Article", dash.PctArticle)
	fmt.Printf("%-22s %6.1f%%\n", "VideoObject", dash.PctVideoObject)
	fmt.Printf("%-22s %6.1f%%\n", "LiveBlogPosting", dash.PctLiveBlog)
	fmt.Printf("%-22s %6.1f%%\n", "Identified author", dash.PctAuthor)
}

func renderTypeShare(title string, rows []dbpkg.TypeShareRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("\n%s\n", title)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-30s %-8s %-8s\n", "Type", "Pages", "Share")
	for _, row := range rows {
		fmt.Printf("%-30s %-8d %6.1f%%\n", row.Token, row.Pages, row.Share)
	}
}

func renderNewsPages(reports []models.PageReport) {
	news := lo.Filter(reports, func(r models.PageReport, _ int) bool {
		return r.HasRootType("NewsArticle")
	})
	if len(news) == 0 {
		return
	}

	fmt.Printf("\nNews pages (%d):\n", len(news))
	fmt.Println(strings.Repeat("-", 60))
	for i, r := range news {
		fmt.Printf("%2d. %s\n", i+1, r.URL)
		fmt.Printf("    Published: %s | Modified: %s\n", orNone(r.PublishedAt), orNone(r.ModifiedAt))
	}
}

func renderLiveBlogs(reports []models.PageReport) {
	blogs := lo.Filter(reports, func(r models.PageReport, _ int) bool {
		return r.HasRootType("LiveBlogPosting")
	})
	if len(blogs) == 0 {
		return
	}

	fmt.Printf("\nLive blogs (%d):\n", len(blogs))
	fmt.Println(strings.Repeat("-", 60))
	for i, r := range blogs {
		fmt.Printf("%2d. %s\n", i+1, r.URL)
		fmt.Printf("    Updates: %d | Avg gap: %.1f min | Created: %s | Modified: %s\n",
			r.UpdateCount, r.AvgUpdateMinutes, orNone(r.LiveBlogCreated), orNone(r.LiveBlogModified))
	}
}

func renderContainment(reports []models.PageReport) {
	trueCounts := make(map[string]int)
	totals := make(map[string]int)
	for _, r := range reports {
		for key, found := range r.ContainsResults {
			totals[key]++
			if found {
				trueCounts[key]++
			}
		}
	}
	if len(totals) == 0 {
		return
	}

	keys := lo.Keys(totals)
	sort.Strings(keys)

	fmt.Printf("\nContainment checks:\n")
	fmt.Println(strings.Repeat("-", 60))
	for _, key := range keys {
		fmt.Printf("%-30s %d/%d pages\n", key, trueCounts[key], totals[key])
	}
}

func renderFailures(reports []models.PageReport) {
	failed := lo.Filter(reports, func(r models.PageReport, _ int) bool {
		return r.Failed()
	})
	if len(failed) == 0 {
		return
	}

	fmt.Printf("\nFailed pages (%d):\n", len(failed))
	fmt.Println(strings.Repeat("-", 60))
	for i, r := range failed {
		fmt.Printf("%2d. [%s] %s\n", i+1, r.ErrorType, r.URL)
		fmt.Printf("    %s\n", r.Error)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
