package scan

import (
	"github.com/seoscope/schemascan/models"
	"github.com/seoscope/schemascan/pkg/aggregate"
)

type Job struct {
	Index int
	URL   string
}

// Result holds the outcome of a processed job. Index is the job's position
// in the input URL list so output order can be restored after the pool.
type Result struct {
	Index  int
	URL    string
	Report models.PageReport
	Error  error
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `yaml:"total_urls" json:"total_urls"`
	Successful       int     `yaml:"successful" json:"successful"`
	Failed           int     `yaml:"failed" json:"failed"`
	TotalTimeSeconds float64 `yaml:"total_time_seconds" json:"total_time_seconds"`
}

// Output is the structured output for the entire run.
type Output struct {
	Status    string              `yaml:"status" json:"status"`
	ScanID    int64               `yaml:"scan_id" json:"scan_id"`
	Stats     Stats               `yaml:"stats" json:"stats"`
	Dashboard aggregate.Dashboard `yaml:"dashboard" json:"dashboard"`
	Results   []models.PageReport `yaml:"results" json:"results"`
}

// FailedURL represents a URL that failed during processing.
type FailedURL struct {
	URL          string `yaml:"url"`
	StatusCode   int    `yaml:"status_code"` // 0 for network errors
	ErrorType    string `yaml:"error_type"`
	ErrorMessage string `yaml:"error_message"`
}

// FailedURLs wraps the list of failed URLs for YAML output.
type FailedURLs struct {
	FailedURLs []FailedURL `yaml:"failed_urls"`
}

// collectFailedURLs extracts failed pages from results.
func collectFailedURLs(results []Result) []FailedURL {
	var failed []FailedURL
	for _, r := range results {
		if r.Error == nil {
			continue
		}
		failed = append(failed, FailedURL{
			URL:          r.URL,
			StatusCode:   r.Report.StatusCode,
			ErrorType:    r.Report.ErrorType,
			ErrorMessage: r.Error.Error(),
		})
	}
	return failed
}
