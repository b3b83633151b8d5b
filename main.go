package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/seoscope/schemascan/internal/report"
	"github.com/seoscope/schemascan/internal/scan"
	"github.com/seoscope/schemascan/pkg/csvio"
	"github.com/seoscope/schemascan/pkg/db"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:  "db",
		Usage: "path to the SQLite database (default: " + db.DefaultDBName + " next to the binary)",
	}

	app := &cli.App{
		Name:  "schemascan",
		Usage: "classify schema.org structured data across news pages",
		Commands: []*cli.Command{
			{
				Name:   "scan",
				Usage:  "fetch pages and classify their JSON-LD markup",
				Action: scan.ScanAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated list of URLs to scan",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "CSV file with a URL column to scan",
					},
					&cli.StringFlag{
						Name:  "csv-column",
						Value: csvio.DefaultURLColumn,
						Usage: "name of the URL column in the CSV",
					},
					&cli.IntFlag{
						Name:  "max-rows",
						Value: csvio.DefaultMaxRows,
						Usage: "max URLs read from the CSV (0 reads all rows)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "number of concurrent fetch workers",
					},
					&cli.StringFlag{
						Name:  "timeout",
						Value: "20s",
						Usage: "per-request fetch timeout",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "reuse cached markup younger than this",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "bypass the markup cache and always refetch",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Value: "schemascan-cache",
						Usage: "directory for cached markup",
					},
					&cli.BoolFlag{
						Name:  "respect-robots",
						Usage: "honor robots.txt disallow rules",
					},
					&cli.StringSliceFlag{
						Name:  "contains",
						Usage: "containment check as Parent:Child (repeatable), e.g. NewsArticle:ImageObject",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "yaml",
						Usage: "stdout format: yaml or json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
					dbFlag,
				},
			},
			{
				Name:   "scans",
				Usage:  "list recorded scans",
				Action: report.ScansAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "max scans to list",
					},
					dbFlag,
				},
			},
			{
				Name:      "show",
				Usage:     "show the full report for a scan (latest when omitted)",
				ArgsUsage: "[scan-id]",
				Action:    report.ShowAction,
				Flags:     []cli.Flag{dbFlag},
			},
			{
				Name:      "export",
				Usage:     "export a scan's page reports to CSV (latest when omitted)",
				ArgsUsage: "[scan-id]",
				Action:    report.ExportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output CSV path (default: scan-<id>.csv)",
					},
					dbFlag,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
