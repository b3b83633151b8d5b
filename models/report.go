package models

import "github.com/samber/lo"

// PageReport is the flattened classification record for one scanned URL.
// List fields stay as slices here; rendering joins them only at the edge.
type PageReport struct {
	URL        string `yaml:"url" json:"url"`
	StatusCode int    `yaml:"status_code,omitempty" json:"status_code,omitempty"`
	Error      string `yaml:"error,omitempty" json:"error,omitempty"`
	ErrorType  string `yaml:"error_type,omitempty" json:"error_type,omitempty"`

	BlockCount    int      `yaml:"block_count" json:"block_count"`
	ParseWarnings []string `yaml:"parse_warnings,omitempty" json:"parse_warnings,omitempty"`

	Roots  []string `yaml:"root_types" json:"root_types"`
	Nested []string `yaml:"nested_types" json:"nested_types"`

	HasAuthor  bool   `yaml:"has_author" json:"has_author"`
	AuthorName string `yaml:"author_name,omitempty" json:"author_name,omitempty"`

	PublishedAt string `yaml:"published_at,omitempty" json:"published_at,omitempty"`
	ModifiedAt  string `yaml:"modified_at,omitempty" json:"modified_at,omitempty"`

	AvgUpdateMinutes float64 `yaml:"avg_update_minutes,omitempty" json:"avg_update_minutes,omitempty"`
	UpdateCount      int     `yaml:"update_count,omitempty" json:"update_count,omitempty"`
	LiveBlogCreated  string  `yaml:"liveblog_created,omitempty" json:"liveblog_created,omitempty"`
	LiveBlogModified string  `yaml:"liveblog_modified,omitempty" json:"liveblog_modified,omitempty"`

	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	SiteName string `yaml:"site_name,omitempty" json:"site_name,omitempty"`
	Byline   string `yaml:"byline,omitempty" json:"byline,omitempty"`
	Excerpt  string `yaml:"excerpt,omitempty" json:"excerpt,omitempty"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`

	// ContainsResults is keyed by ContainsCheck.Key().
	ContainsResults map[string]bool `yaml:"contains,omitempty" json:"contains,omitempty"`

	ContentHash string `yaml:"content_hash,omitempty" json:"content_hash,omitempty"`
	CacheHit    bool   `yaml:"cache_hit,omitempty" json:"cache_hit,omitempty"`
}

// Failed reports whether the page never made it to classification.
func (r PageReport) Failed() bool {
	return r.Error != ""
}

// HasRootType reports whether token appears in the page's root type list.
func (r PageReport) HasRootType(token string) bool {
	return lo.Contains(r.Roots, token)
}
