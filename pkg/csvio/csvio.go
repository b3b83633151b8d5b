// Package csvio reads URL lists from CSV files and writes scan exports.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seoscope/schemascan/models"
)

const (
	DefaultURLColumn = "url"
	DefaultMaxRows   = 50
)

// ReadURLColumn pulls URLs out of one column of a CSV file. The column is
// matched against the header row case-insensitively. maxRows caps how many
// data rows are read before empty cells are dropped; a non-positive cap
// reads the whole file.
func ReadURLColumn(path, column string, maxRows int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("column %q not found in CSV header %v", column, header)
	}

	var urls []string
	rows := 0
	for {
		if maxRows > 0 && rows >= maxRows {
			break
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows++
		if colIdx >= len(record) {
			continue
		}
		url := strings.TrimSpace(record[colIdx])
		if url == "" {
			continue
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// WriteReports writes one row per scanned page. Containment checks get one
// column each, in the order the checks were requested.
func WriteReports(path string, reports []models.PageReport, checks []models.ContainsCheck) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(exportHeader(checks)); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, report := range reports {
		if err := writer.Write(exportRow(report, checks)); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}

func exportHeader(checks []models.ContainsCheck) []string {
	header := []string{
		"url", "status", "error",
		"block_count", "root_types", "nested_types",
		"has_author", "author_name",
		"published_at", "modified_at",
		"avg_update_minutes", "update_count", "liveblog_created", "liveblog_modified",
		"title", "site_name", "byline", "language",
	}
	for _, check := range checks {
		header = append(header, "contains_"+check.Key())
	}
	return header
}

func exportRow(r models.PageReport, checks []models.ContainsCheck) []string {
	status := ""
	if r.StatusCode != 0 {
		status = strconv.Itoa(r.StatusCode)
	}
	avgMinutes := ""
	updateCount := ""
	if r.UpdateCount > 0 {
		avgMinutes = strconv.FormatFloat(r.AvgUpdateMinutes, 'f', 1, 64)
		updateCount = strconv.Itoa(r.UpdateCount)
	}

	row := []string{
		r.URL, status, r.Error,
		strconv.Itoa(r.BlockCount),
		strings.Join(r.Roots, ", "),
		strings.Join(r.Nested, ", "),
		strconv.FormatBool(r.HasAuthor),
		r.AuthorName,
		r.PublishedAt, r.ModifiedAt,
		avgMinutes, updateCount, r.LiveBlogCreated, r.LiveBlogModified,
		r.Title, r.SiteName, r.Byline, r.Language,
	}
	for _, check := range checks {
		cell := ""
		if r.ContainsResults != nil {
			cell = strconv.FormatBool(r.ContainsResults[check.Key()])
		}
		row = append(row, cell)
	}
	return row
}
