package scan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/seoscope/schemascan/internal/common"
	"github.com/seoscope/schemascan/models"
	"github.com/seoscope/schemascan/pkg/aggregate"
	"github.com/seoscope/schemascan/pkg/csvio"
	"github.com/seoscope/schemascan/pkg/db"
	"github.com/seoscope/schemascan/pkg/fetcher"
	"github.com/seoscope/schemascan/pkg/htmlcache"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScanAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	var maxAge time.Duration
	var err error
	if c.Bool("force-fetch") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	timeout, err := time.ParseDuration(c.String("timeout"))
	if err != nil {
		logger.Error("invalid timeout duration", "error", err)
		os.Exit(2)
	}

	checks, err := ParseContainsChecks(c.StringSlice("contains"))
	if err != nil {
		logger.Error("invalid contains flag", "error", err)
		os.Exit(2)
	}

	cache, err := htmlcache.New(c.String("cache-dir"), maxAge)
	if err != nil {
		logger.Error("failed to initialize markup cache", "error", err)
		os.Exit(2)
	}
	if maxAge > 0 {
		if removed, err := cache.Prune(); err != nil {
			logger.Warn("Failed to prune markup cache", "error", err)
		} else if removed > 0 {
			logger.Info("Pruned stale cached markup", "removed", removed)
		}
	}

	database, err := db.OpenDefault(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	// Initialize runtime config from CLI flags
	config := &models.ScanConfig{
		URLs:           []string{},
		WorkerCount:    c.Int("workers"),
		Timeout:        timeout,
		CacheDir:       c.String("cache-dir"),
		MaxAge:         maxAge,
		RespectRobots:  c.Bool("respect-robots"),
		ContainsChecks: checks,
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}

	// URL sources: inline --urls or a --csv column, never both
	if c.IsSet("csv") {
		if c.IsSet("urls") {
			fmt.Fprintln(os.Stderr, "Error: Cannot use both --urls and --csv flags")
			fmt.Fprintln(os.Stderr, "Use --csv to scan URLs from a spreadsheet column, or --urls for an inline list")
			os.Exit(1)
		}
		urls, err := csvio.ReadURLColumn(c.String("csv"), c.String("csv-column"), c.Int("max-rows"))
		if err != nil {
			logger.Error("failed to read CSV", "error", err, "path", c.String("csv"))
			os.Exit(2)
		}
		config.URLs = urls
	}
	if c.IsSet("urls") {
		config.URLs = strings.Split(c.String("urls"), ",")
	}

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  schemascan scan --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, `  schemascan scan --csv pages.csv                      # Scan the "url" column`)
		fmt.Fprintln(os.Stderr, `  schemascan scan --csv pages.csv --csv-column link    # Scan another column`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: schemascan scan --help")
		os.Exit(1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		fmt.Fprintln(os.Stderr, "      Spaces in URLs must be pre-encoded as %20. Braces {} in domains are not allowed.")
		os.Exit(1)
	}
	config.URLs = sanitizedURLs

	scanID, err := database.InsertScan(len(config.URLs), joinCheckKeys(checks))
	if err != nil {
		logger.Error("failed to create scan record", "error", err)
		os.Exit(2)
	}
	logger.Info("Scan created", "scan_id", scanID, "url_count", len(config.URLs))

	f := fetcher.NewFetcher(timeout)
	if config.RespectRobots {
		f.RespectRobots()
	}

	allResults := run(logger, config, cache, f, database, scanID, c.Bool("force-fetch"), func(done, total int) {
		logger.Info("Scan progress", "done", done, "total", total)
	})

	stats := Stats{
		TotalURLs:        len(config.URLs),
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}
	reports := make([]models.PageReport, 0, len(allResults))
	for _, r := range allResults {
		reports = append(reports, r.Report)
		if r.Error != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
	}

	output := Output{
		ScanID:    scanID,
		Stats:     stats,
		Dashboard: aggregate.FromReports(reports),
		Results:   reports,
	}
	if stats.Failed > 0 {
		output.Status = "partial_failure"
	} else {
		output.Status = "success"
	}

	if err := database.UpdateScanStats(scanID, stats.Successful, stats.Failed); err != nil {
		logger.Warn("Failed to update scan stats in DB", "error", err)
	}

	if scanRecord, err := database.GetScanByID(scanID); err != nil {
		logger.Warn("Failed to load scan record for summary", "error", err)
	} else {
		if err := WriteScanSummary(scanRecord.SummaryDir, output); err != nil {
			logger.Warn("Failed to write scan summary", "error", err)
		}
		if failed := collectFailedURLs(allResults); len(failed) > 0 {
			if err := WriteFailedURLs(scanRecord.SummaryDir, failed); err != nil {
				logger.Warn("Failed to write failed URLs file", "error", err)
			}
		}
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(output)
	} else {
		outputData, marshalErr = json.MarshalIndent(output, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal final output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if stats.Failed == stats.TotalURLs {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}

	return nil
}
