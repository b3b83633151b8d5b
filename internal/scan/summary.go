package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteScanSummary writes the full scan output to the scan's directory
// so results survive past the terminal session.
func WriteScanSummary(scanDir string, output Output) error {
	if err := os.MkdirAll(scanDir, 0755); err != nil {
		return fmt.Errorf("failed to create scan directory: %w", err)
	}

	yamlBytes, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal summary to YAML: %w", err)
	}

	outputPath := filepath.Join(scanDir, "summary.yaml")
	if err := os.WriteFile(outputPath, yamlBytes, 0600); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	return nil
}

// WriteFailedURLs writes the failed URL list next to the summary so
// retries do not need the full output.
func WriteFailedURLs(scanDir string, failed []FailedURL) error {
	if err := os.MkdirAll(scanDir, 0755); err != nil {
		return fmt.Errorf("failed to create scan directory: %w", err)
	}

	yamlBytes, err := yaml.Marshal(FailedURLs{FailedURLs: failed})
	if err != nil {
		return fmt.Errorf("failed to marshal failed URLs to YAML: %w", err)
	}

	outputPath := filepath.Join(scanDir, "failed_urls.yaml")
	if err := os.WriteFile(outputPath, yamlBytes, 0600); err != nil {
		return fmt.Errorf("failed to write failed URLs file: %w", err)
	}

	return nil
}
