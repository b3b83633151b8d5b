package scan

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/seoscope/schemascan/models"
)

func TestWriteScanSummary(t *testing.T) {
	scanDir := filepath.Join(t.TempDir(), "scans", "2025-01-15-7")
	output := Output{
		Status: "success",
		ScanID: 7,
		Stats:  Stats{TotalURLs: 2, Successful: 2, TotalTimeSeconds: 1.25},
		Results: []models.PageReport{
			{URL: "https://ledger.example/budget", StatusCode: 200, Roots: []string{"NewsArticle"}},
			{URL: "https://ledger.example/live", StatusCode: 200, Roots: []string{"LiveBlogPosting"}},
		},
	}

	if err := WriteScanSummary(scanDir, output); err != nil {
		t.Fatalf("failed to write summary: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(scanDir, "summary.yaml"))
	if err != nil {
		t.Fatalf("failed to read summary back: %v", err)
	}

	var loaded Output
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("summary is not valid YAML: %v", err)
	}
	if loaded.ScanID != 7 || loaded.Status != "success" {
		t.Errorf("summary lost scan identity: id=%d status=%q", loaded.ScanID, loaded.Status)
	}
	if len(loaded.Results) != 2 {
		t.Errorf("expected 2 results in summary, got %d", len(loaded.Results))
	}
}

func TestWriteFailedURLs(t *testing.T) {
	scanDir := filepath.Join(t.TempDir(), "scans", "2025-01-15-8")
	failed := []FailedURL{
		{URL: "https://down.example/", ErrorType: "fetch", ErrorMessage: "connection refused"},
	}

	if err := WriteFailedURLs(scanDir, failed); err != nil {
		t.Fatalf("failed to write failed URLs: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(scanDir, "failed_urls.yaml"))
	if err != nil {
		t.Fatalf("failed to read failed URLs back: %v", err)
	}

	var loaded FailedURLs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed URL list is not valid YAML: %v", err)
	}
	if len(loaded.FailedURLs) != 1 || loaded.FailedURLs[0].URL != "https://down.example/" {
		t.Errorf("unexpected failed URL list: %+v", loaded.FailedURLs)
	}
}
