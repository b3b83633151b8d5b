package report

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/seoscope/schemascan/pkg/aggregate"
	"github.com/seoscope/schemascan/pkg/csvio"
	dbpkg "github.com/seoscope/schemascan/pkg/db"
	"github.com/seoscope/schemascan/pkg/help"
)

// ScansAction lists recorded scans, most recent first.
func ScansAction(c *cli.Context) error {
	database, err := dbpkg.OpenDefault(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	scans, err := database.ListScans(limit)
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}

	if len(scans) == 0 {
		fmt.Println("No scans found")
		fmt.Println()
		fmt.Print(help.ColdstartYAML)
		return nil
	}

	renderScansTable(scans)

	fmt.Printf("\nTotal: %d scans\n", len(scans))
	fmt.Printf("\nTip: Use 'schemascan show <id>' to see details\n")

	return nil
}

// ShowAction prints the full report for one scan: adoption dashboard, type
// share tables, temporal detail for news and live-blog pages, and failures.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.OpenDefault(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	scanID, err := GetScanIDOrLatest(c, database)
	if err != nil {
		return err
	}

	scan, err := database.GetScanByID(scanID)
	if err != nil {
		return fmt.Errorf("failed to get scan: %w", err)
	}

	reports, err := database.GetScanPages(scanID)
	if err != nil {
		return fmt.Errorf("failed to get scan pages: %w", err)
	}

	fmt.Printf("Scan %d\n", scan.ScanID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", scan.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Directory:   %s\n", scan.SummaryDir)
	fmt.Printf("URLs:        %d total (%d success, %d failed)\n",
		scan.URLCount, scan.SuccessCount, scan.FailedCount)
	if scan.ContainsChecks != "" {
		fmt.Printf("Checks:      %s\n", scan.ContainsChecks)
	}

	renderDashboard(aggregate.FromReports(reports))

	rootShare, err := database.TypeShare(scanID, dbpkg.PositionRoot)
	if err != nil {
		return fmt.Errorf("failed to compute root type share: %w", err)
	}
	renderTypeShare("Root types across scan:", rootShare)

	nestedShare, err := database.TypeShare(scanID, dbpkg.PositionNested)
	if err != nil {
		return fmt.Errorf("failed to compute nested type share: %w", err)
	}
	renderTypeShare("Nested types across scan:", nestedShare)

	renderNewsPages(reports)
	renderLiveBlogs(reports)
	renderContainment(reports)
	renderFailures(reports)

	fmt.Printf("\nTip: Use 'schemascan export %d --out pages.csv' for the full CSV\n", scanID)

	return nil
}

// ExportAction writes a scan's page reports to CSV.
func ExportAction(c *cli.Context) error {
	database, err := dbpkg.OpenDefault(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	scanID, err := GetScanIDOrLatest(c, database)
	if err != nil {
		return err
	}

	scan, err := database.GetScanByID(scanID)
	if err != nil {
		return fmt.Errorf("failed to get scan: %w", err)
	}

	reports, err := database.GetScanPages(scanID)
	if err != nil {
		return fmt.Errorf("failed to get scan pages: %w", err)
	}
	if len(reports) == 0 {
		return fmt.Errorf("scan %d has no pages to export", scanID)
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = fmt.Sprintf("scan-%d.csv", scanID)
	}

	checks := parseStoredChecks(scan.ContainsChecks)
	if err := csvio.WriteReports(outPath, reports, checks); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	fmt.Printf("Exported %d pages from scan %d to %s\n", len(reports), scanID, outPath)

	return nil
}
