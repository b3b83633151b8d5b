package scan

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/seoscope/schemascan/internal/common"
	"github.com/seoscope/schemascan/models"
	"github.com/seoscope/schemascan/pkg/db"
	"github.com/seoscope/schemascan/pkg/fetcher"
	"github.com/seoscope/schemascan/pkg/htmlcache"
	"github.com/seoscope/schemascan/pkg/jsonld"
	"github.com/seoscope/schemascan/pkg/markup"
	"github.com/seoscope/schemascan/pkg/pagemeta"
)

// run fans the URL list out to workers and collects one result per job.
// onProgress, when non-nil, is invoked from the collector goroutine after
// each page completes, so observers need no locking.
func run(logger *slog.Logger, config *models.ScanConfig, cache *htmlcache.Cache, f *fetcher.Fetcher, database *db.DB, scanID int64, forceFetch bool, onProgress func(done, total int)) []Result {
	logger.Info("Starting concurrent scan phase", "url_count", len(config.URLs), "workers", config.WorkerCount, "force_fetch", forceFetch, "max_age", config.MaxAge)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.URLs))
	results := make(chan Result, len(config.URLs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, cache, f, &wg, jobs, results, config.ContainsChecks, database, scanID, forceFetch)
	}

	total := len(config.URLs)
	for i, rawURL := range config.URLs {
		jobs <- Job{Index: i, URL: rawURL}
	}
	close(jobs)

	// One result per job, restored to input order as results arrive.
	allResults := make([]Result, total)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		done := 0
		for result := range results {
			allResults[result.Index] = result
			done++
			if onProgress != nil {
				onProgress(done, total)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	logger.Info("All scan workers finished")
	return allResults
}

func worker(id int, logger *slog.Logger, cache *htmlcache.Cache, f *fetcher.Fetcher, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, checks []models.ContainsCheck, database *db.DB, scanID int64, forceFetch bool) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)

		var html string
		var statusCode int
		var cacheHit bool

		if cache != nil && !forceFetch {
			if cached, ok := cache.Get(job.URL); ok {
				logger.Info("Markup found in cache, using it", "worker_id", id, "url", job.URL)
				html = cached
				statusCode = 200 // Assume success from cache
				cacheHit = true
			}
		}

		if !cacheHit {
			var err error
			html, statusCode, err = f.GetMarkup(job.URL)
			if err != nil {
				logger.Error("Error fetching markup", "worker_id", id, "url", job.URL, "error", err)
				report := models.PageReport{URL: job.URL, Error: err.Error(), ErrorType: "fetch"}
				storePage(logger, database, scanID, report)
				results <- Result{Index: job.Index, URL: job.URL, Report: report, Error: err}
				continue
			}
			if cache != nil {
				if err := cache.Set(job.URL, html); err != nil {
					logger.Warn("Failed to cache markup", "url", job.URL, "error", err)
				}
			}
		}

		report := classifyPage(job.URL, html, statusCode, checks)
		report.CacheHit = cacheHit
		report.ContentHash = common.ContentHash([]byte(html))

		storePage(logger, database, scanID, report)
		results <- Result{Index: job.Index, URL: job.URL, Report: report}
		logger.Info("Worker finished processing", "worker_id", id, "url", job.URL)
	}
}

// storePage persists the report; storage failures are logged, not fatal.
func storePage(logger *slog.Logger, database *db.DB, scanID int64, report models.PageReport) {
	if database == nil {
		return
	}
	if _, err := database.InsertPage(scanID, report); err != nil {
		logger.Warn("Failed to insert page to DB", "url", report.URL, "error", err)
	}
}

// classifyPage turns fetched markup into the flattened page record. It
// only fails when the HTML itself cannot be read; pages without any
// structured data produce empty lists, not errors.
func classifyPage(pageURL, html string, statusCode int, checks []models.ContainsCheck) models.PageReport {
	report := models.PageReport{URL: pageURL, StatusCode: statusCode}

	blocks, warnings, err := markup.ExtractBlocks(html)
	if err != nil {
		report.Error = err.Error()
		report.ErrorType = "markup"
		return report
	}
	report.BlockCount = len(blocks)
	report.ParseWarnings = warnings

	classification := jsonld.Classify(blocks)
	report.Roots = classification.Roots
	report.Nested = classification.Nested
	report.PublishedAt = classification.PublishedAt
	report.ModifiedAt = classification.ModifiedAt

	report.HasAuthor, report.AuthorName = jsonld.DetectAuthor(blocks)

	freq := jsonld.AnalyzeLiveUpdates(blocks)
	report.AvgUpdateMinutes = freq.AverageIntervalMinutes
	report.UpdateCount = freq.UpdateCount
	report.LiveBlogCreated = freq.CreatedAt
	report.LiveBlogModified = freq.LastModifiedAt

	if len(checks) > 0 {
		report.ContainsResults = make(map[string]bool, len(checks))
		for _, check := range checks {
			report.ContainsResults[check.Key()] = jsonld.ContainsNested(blocks, check.ParentType, check.ChildSelector)
		}
	}

	meta := pagemeta.Enrich(pageURL, html)
	report.Title = meta.Title
	report.SiteName = meta.SiteName
	report.Byline = meta.Byline
	report.Excerpt = meta.Excerpt
	report.Language = pageLanguage(blocks, meta.Language)

	return report
}

// pageLanguage prefers the language the page declares in its structured
// data over the statistical guess from the readable text.
func pageLanguage(blocks []*jsonld.Value, fallback string) string {
	declared := ""
	for _, block := range blocks {
		jsonld.Walk(block, true, func(obj *jsonld.Value, _ bool) {
			if declared != "" {
				return
			}
			if lang := obj.Get("inLanguage"); lang.IsString() {
				declared = lang.Str()
			}
		})
		if declared != "" {
			break
		}
	}
	if declared == "" {
		return fallback
	}
	// "en-US" and friends collapse to the bare ISO code.
	declared = strings.ToLower(strings.TrimSpace(declared))
	if idx := strings.IndexAny(declared, "-_"); idx > 0 {
		declared = declared[:idx]
	}
	return declared
}
