package help

const ColdstartYAML = `# schemascan Quick Start

commands:
  basic_scan: |
    schemascan scan --urls "https://example.com/article"

  csv_scan: |
    schemascan scan --csv pages.csv
    schemascan scan --csv pages.csv --csv-column link --max-rows 100

  containment_checks: |
    schemascan scan --urls "https://example.com/article" --contains NewsArticle:ImageObject --contains NewsArticle:VideoObject

  list_scans: |
    schemascan scans

  scan_details: |
    schemascan show 5

  export_csv: |
    schemascan export 5 --out pages.csv

  multi_stage: |
    # Step 1: Scan a URL column from a spreadsheet
    schemascan scan --csv pages.csv --max-rows 100

    # Step 2: List scans and get the latest ID
    schemascan scans

    # Step 3: Inspect the adoption dashboard and type tables
    schemascan show

    # Step 4: Export the page reports for a spreadsheet
    schemascan export --out pages-out.csv

scan_system:
  - "Scans tracked in SQLite database (schemascan.db next to the binary)"
  - "Auto-incrementing scan IDs (1, 2, 3...)"
  - "Summary directories: scans/2026-01-15-1 (date + ID)"
  - "Fetched markup cached on disk; --max-age controls reuse, --force-fetch bypasses"
  - "Use 'schemascan show <id>' for details, 'schemascan show' for the latest"

key_files:
  - "scans/<date>-<id>/summary.yaml (full scan output)"
  - "scans/<date>-<id>/failed_urls.yaml (only written when errors occurred)"

error_behavior:
  - "Malformed URLs: fail fast before fetching"
  - "HTTP errors (404, 500) are classified results, not failures"
  - "Pages without structured data report empty type lists, not errors"
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
`
