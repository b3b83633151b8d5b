package report

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/seoscope/schemascan/models"
	dbpkg "github.com/seoscope/schemascan/pkg/db"
)

// GetScanIDOrLatest returns the scan ID from args, or the most recent scan
// when none is given.
func GetScanIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		scanID, err := database.LatestScanID()
		if err != nil {
			return 0, fmt.Errorf("no scans found. Run 'schemascan scan --urls \"...\"' first")
		}
		return scanID, nil
	}

	var scanID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &scanID); err != nil {
		return 0, fmt.Errorf("invalid scan ID: %s", c.Args().First())
	}
	return scanID, nil
}

// parseStoredChecks rebuilds containment checks from the comma-joined form
// stored on the scan row. Entries that no longer split cleanly are skipped.
func parseStoredChecks(stored string) []models.ContainsCheck {
	var checks []models.ContainsCheck
	for _, item := range strings.Split(stored, ",") {
		parent, child, found := strings.Cut(strings.TrimSpace(item), ":")
		if !found || parent == "" || child == "" {
			continue
		}
		checks = append(checks, models.ContainsCheck{ParentType: parent, ChildSelector: child})
	}
	return checks
}
