// Package models defines the records shared by scanning and reporting.
package models

import (
	"fmt"
	"time"
)

// ScanConfig holds runtime configuration for scan operations.
// All values come from CLI flags, not external config files.
type ScanConfig struct {
	URLs           []string
	WorkerCount    int
	Timeout        time.Duration
	CacheDir       string
	MaxAge         time.Duration
	RespectRobots  bool
	ContainsChecks []ContainsCheck
}

// ContainsCheck asks whether a page nests a child under a given parent
// type, e.g. an ImageObject anywhere inside a NewsArticle entity. The
// child selector matches either a nested @type token or a property name.
type ContainsCheck struct {
	ParentType    string
	ChildSelector string
}

// Key is the stable identifier used for result maps and report columns.
func (c ContainsCheck) Key() string {
	return fmt.Sprintf("%s:%s", c.ParentType, c.ChildSelector)
}
