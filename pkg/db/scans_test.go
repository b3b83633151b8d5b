package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertScan(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	scanID, err := db.InsertScan(5, "NewsArticle:ImageObject")
	if err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}
	if scanID == 0 {
		t.Fatal("InsertScan() returned 0 ID")
	}

	scan, err := db.GetScanByID(scanID)
	if err != nil {
		t.Fatalf("GetScanByID() error = %v", err)
	}
	if scan.URLCount != 5 {
		t.Errorf("URLCount = %d, want 5", scan.URLCount)
	}
	if scan.ContainsChecks != "NewsArticle:ImageObject" {
		t.Errorf("ContainsChecks = %q", scan.ContainsChecks)
	}
	if scan.SummaryDir == "" || scan.SummaryDir == "temp" {
		t.Errorf("SummaryDir = %q, want a scan-specific directory", scan.SummaryDir)
	}
}

func TestUpdateScanStats(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	scanID, err := db.InsertScan(3, "")
	if err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}
	if err := db.UpdateScanStats(scanID, 2, 1); err != nil {
		t.Fatalf("UpdateScanStats() error = %v", err)
	}

	scan, err := db.GetScanByID(scanID)
	if err != nil {
		t.Fatalf("GetScanByID() error = %v", err)
	}
	if scan.SuccessCount != 2 || scan.FailedCount != 1 {
		t.Errorf("stats = %d/%d, want 2/1", scan.SuccessCount, scan.FailedCount)
	}
}

func TestGetScanByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetScanByID(999); err == nil {
		t.Error("GetScanByID() with unknown ID should return error")
	}
}

func TestListScansMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := db.InsertScan(1, "")
	if err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}
	second, err := db.InsertScan(2, "")
	if err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}

	scans, err := db.ListScans(0)
	if err != nil {
		t.Fatalf("ListScans() error = %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("ListScans() returned %d scans, want 2", len(scans))
	}
	if scans[0].ScanID != second || scans[1].ScanID != first {
		t.Errorf("scan order = [%d, %d], want [%d, %d]", scans[0].ScanID, scans[1].ScanID, second, first)
	}

	limited, err := db.ListScans(1)
	if err != nil {
		t.Fatalf("ListScans(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].ScanID != second {
		t.Errorf("ListScans(1) = %v, want just scan %d", limited, second)
	}
}

func TestLatestScanID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestScanID(); err == nil {
		t.Error("LatestScanID() on empty database should return error")
	}

	if _, err := db.InsertScan(1, ""); err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}
	want, err := db.InsertScan(1, "")
	if err != nil {
		t.Fatalf("InsertScan() error = %v", err)
	}

	got, err := db.LatestScanID()
	if err != nil {
		t.Fatalf("LatestScanID() error = %v", err)
	}
	if got != want {
		t.Errorf("LatestScanID() = %d, want %d", got, want)
	}
}
