package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Scan represents one scan run.
type Scan struct {
	ScanID         int64
	CreatedAt      time.Time
	URLCount       int
	SuccessCount   int
	FailedCount    int
	ContainsChecks string
	SummaryDir     string
}

// InsertScan creates a new scan record and returns its ID.
func (db *DB) InsertScan(urlCount int, containsChecks string) (int64, error) {
	dateStr := time.Now().Format("2006-01-02")

	// Insert with placeholder summary_dir, then update once we have the ID
	result, err := db.Exec(`
		INSERT INTO scans (url_count, contains_checks, summary_dir)
		VALUES (?, ?, ?)
	`, urlCount, containsChecks, "temp")
	if err != nil {
		return 0, fmt.Errorf("failed to create scan: %w", err)
	}

	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan ID: %w", err)
	}

	summaryDir := fmt.Sprintf("scans/%s-%d", dateStr, scanID)
	if _, err := db.Exec("UPDATE scans SET summary_dir = ? WHERE scan_id = ?", summaryDir, scanID); err != nil {
		return 0, fmt.Errorf("failed to update summary_dir: %w", err)
	}

	return scanID, nil
}

// UpdateScanStats updates the success and failed counts for a scan.
func (db *DB) UpdateScanStats(scanID int64, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE scans
		SET success_count = ?, failed_count = ?
		WHERE scan_id = ?
	`, successCount, failedCount, scanID)
	if err != nil {
		return fmt.Errorf("failed to update scan stats: %w", err)
	}
	return nil
}

// GetScanByID retrieves a scan by its ID.
func (db *DB) GetScanByID(scanID int64) (*Scan, error) {
	var scan Scan
	err := db.QueryRow(`
		SELECT scan_id, created_at, url_count, success_count, failed_count, contains_checks, summary_dir
		FROM scans
		WHERE scan_id = ?
	`, scanID).Scan(
		&scan.ScanID,
		&scan.CreatedAt,
		&scan.URLCount,
		&scan.SuccessCount,
		&scan.FailedCount,
		&scan.ContainsChecks,
		&scan.SummaryDir,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan %d not found", scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return &scan, nil
}

// ListScans retrieves scans ordered by most recent first.
func (db *DB) ListScans(limit int) ([]Scan, error) {
	query := `
		SELECT scan_id, created_at, url_count, success_count, failed_count, contains_checks, summary_dir
		FROM scans
		ORDER BY created_at DESC, scan_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var s Scan
		if err := rows.Scan(&s.ScanID, &s.CreatedAt, &s.URLCount, &s.SuccessCount,
			&s.FailedCount, &s.ContainsChecks, &s.SummaryDir); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}

	return scans, nil
}

// LatestScanID returns the most recent scan's ID, or an error when the
// database holds no scans yet.
func (db *DB) LatestScanID() (int64, error) {
	var scanID int64
	err := db.QueryRow("SELECT scan_id FROM scans ORDER BY created_at DESC, scan_id DESC LIMIT 1").Scan(&scanID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no scans recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest scan: %w", err)
	}
	return scanID, nil
}
