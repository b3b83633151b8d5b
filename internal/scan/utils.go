package scan

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/seoscope/schemascan/models"
)

// ParseContainsChecks parses --contains flag values of the form
// "ParentType:ChildSelector", e.g. "NewsArticle:ImageObject".
func ParseContainsChecks(specs []string) ([]models.ContainsCheck, error) {
	var checks []models.ContainsCheck
	for _, spec := range specs {
		parent, child, found := strings.Cut(spec, ":")
		parent = strings.TrimSpace(parent)
		child = strings.TrimSpace(child)
		if !found || parent == "" || child == "" {
			return nil, fmt.Errorf("invalid containment check %q, expected Parent:Child", spec)
		}
		checks = append(checks, models.ContainsCheck{ParentType: parent, ChildSelector: child})
	}
	return checks, nil
}

// joinCheckKeys renders checks for the scans table's display column.
func joinCheckKeys(checks []models.ContainsCheck) string {
	return strings.Join(lo.Map(checks, func(c models.ContainsCheck, _ int) string {
		return c.Key()
	}), ", ")
}
