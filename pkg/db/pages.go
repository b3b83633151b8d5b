package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/seoscope/schemascan/models"
)

// Type token positions within a page.
const (
	PositionRoot   = "root"
	PositionNested = "nested"
)

// encodeContainsResults formats containment outcomes as JSON for storage.
func encodeContainsResults(results map[string]bool) string {
	if results == nil {
		return ""
	}
	data, err := json.Marshal(results)
	if err != nil {
		return ""
	}
	return string(data)
}

// encodeWarnings formats fragment parse failures as a JSON array.
func encodeWarnings(warnings []string) string {
	if warnings == nil {
		return ""
	}
	data, err := json.Marshal(warnings)
	if err != nil {
		return ""
	}
	return string(data)
}

// InsertPage stores one page report and its type tokens in a single
// transaction, returning the page_id.
func (db *DB) InsertPage(scanID int64, report models.PageReport) (int64, error) {
	containsJSON := encodeContainsResults(report.ContainsResults)
	warningsJSON := encodeWarnings(report.ParseWarnings)

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO scan_pages (
			scan_id, url, status_code, error_type, error_message,
			block_count, root_types, nested_types,
			has_author, author_name, published_at, modified_at,
			avg_update_minutes, update_count, liveblog_created, liveblog_modified,
			title, site_name, byline, excerpt, language,
			contains_results, parse_warnings, content_hash, cache_hit
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		scanID, report.URL, report.StatusCode, report.ErrorType, report.Error,
		report.BlockCount, strings.Join(report.Roots, ", "), strings.Join(report.Nested, ", "),
		report.HasAuthor, report.AuthorName, report.PublishedAt, report.ModifiedAt,
		report.AvgUpdateMinutes, report.UpdateCount, report.LiveBlogCreated, report.LiveBlogModified,
		report.Title, report.SiteName, report.Byline, report.Excerpt, report.Language,
		containsJSON, warningsJSON, report.ContentHash, report.CacheHit,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert page: %w", err)
	}

	pageID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get page ID: %w", err)
	}

	if err := insertTypeTokens(tx, pageID, scanID, report.Roots, PositionRoot); err != nil {
		return 0, err
	}
	if err := insertTypeTokens(tx, pageID, scanID, report.Nested, PositionNested); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit page: %w", err)
	}
	return pageID, nil
}

func insertTypeTokens(tx *sql.Tx, pageID, scanID int64, tokens []string, position string) error {
	for i, token := range tokens {
		_, err := tx.Exec(`
			INSERT INTO page_types (page_id, scan_id, token, position, ordinal)
			VALUES (?, ?, ?, ?, ?)
		`, pageID, scanID, token, position, i)
		if err != nil {
			return fmt.Errorf("failed to insert type token: %w", err)
		}
	}
	return nil
}

// GetScanPages retrieves every page report for a scan in insert order.
// Type lists come from the normalized page_types rows, not the display
// columns, so ordering and tokens survive round-trips exactly.
func (db *DB) GetScanPages(scanID int64) ([]models.PageReport, error) {
	rows, err := db.Query(`
		SELECT page_id, url, status_code, error_type, error_message,
		       block_count, has_author, author_name, published_at, modified_at,
		       avg_update_minutes, update_count, liveblog_created, liveblog_modified,
		       title, site_name, byline, excerpt, language,
		       contains_results, parse_warnings, content_hash, cache_hit
		FROM scan_pages
		WHERE scan_id = ?
		ORDER BY page_id
	`, scanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan pages: %w", err)
	}
	defer rows.Close()

	var reports []models.PageReport
	indexByPageID := make(map[int64]int)
	for rows.Next() {
		var r models.PageReport
		var pageID int64
		var containsJSON, warningsJSON string
		if err := rows.Scan(
			&pageID, &r.URL, &r.StatusCode, &r.ErrorType, &r.Error,
			&r.BlockCount, &r.HasAuthor, &r.AuthorName, &r.PublishedAt, &r.ModifiedAt,
			&r.AvgUpdateMinutes, &r.UpdateCount, &r.LiveBlogCreated, &r.LiveBlogModified,
			&r.Title, &r.SiteName, &r.Byline, &r.Excerpt, &r.Language,
			&containsJSON, &warningsJSON, &r.ContentHash, &r.CacheHit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		if containsJSON != "" {
			if err := json.Unmarshal([]byte(containsJSON), &r.ContainsResults); err != nil {
				return nil, fmt.Errorf("failed to decode contains results: %w", err)
			}
		}
		if warningsJSON != "" {
			if err := json.Unmarshal([]byte(warningsJSON), &r.ParseWarnings); err != nil {
				return nil, fmt.Errorf("failed to decode parse warnings: %w", err)
			}
		}
		indexByPageID[pageID] = len(reports)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pages: %w", err)
	}

	typeRows, err := db.Query(`
		SELECT page_id, token, position
		FROM page_types
		WHERE scan_id = ?
		ORDER BY page_id, position, ordinal
	`, scanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get page types: %w", err)
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var pageID int64
		var token, position string
		if err := typeRows.Scan(&pageID, &token, &position); err != nil {
			return nil, fmt.Errorf("failed to scan type token: %w", err)
		}
		idx, ok := indexByPageID[pageID]
		if !ok {
			continue
		}
		if position == PositionRoot {
			reports[idx].Roots = append(reports[idx].Roots, token)
		} else {
			reports[idx].Nested = append(reports[idx].Nested, token)
		}
	}
	if err := typeRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate type tokens: %w", err)
	}

	return reports, nil
}

// TypeShareRow is one token's share of a scan's pages.
type TypeShareRow struct {
	Token string
	Pages int
	Share float64 // 0-100, one decimal
}

// TypeShare returns how many pages in a scan carry each type token at the
// given position, most common first. Share uses the scan's full URL count
// as denominator, matching the dashboard percentages.
func (db *DB) TypeShare(scanID int64, position string) ([]TypeShareRow, error) {
	var urlCount int
	err := db.QueryRow("SELECT url_count FROM scans WHERE scan_id = ?", scanID).Scan(&urlCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan %d not found", scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan url_count: %w", err)
	}

	rows, err := db.Query(`
		SELECT token, COUNT(DISTINCT page_id) AS pages
		FROM page_types
		WHERE scan_id = ? AND position = ?
		GROUP BY token
		ORDER BY pages DESC, token ASC
	`, scanID, position)
	if err != nil {
		return nil, fmt.Errorf("failed to query type share: %w", err)
	}
	defer rows.Close()

	var shares []TypeShareRow
	for rows.Next() {
		var row TypeShareRow
		if err := rows.Scan(&row.Token, &row.Pages); err != nil {
			return nil, fmt.Errorf("failed to scan type share: %w", err)
		}
		if urlCount > 0 {
			row.Share = math.Round(float64(row.Pages)/float64(urlCount)*1000) / 10
		}
		shares = append(shares, row)
	}
	return shares, rows.Err()
}
