package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Scans: one row per scan run
CREATE TABLE IF NOT EXISTS scans (
    scan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    url_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    contains_checks TEXT,         -- comma-joined check keys, display only
    summary_dir TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_created ON scans(created_at DESC);

-- Scan pages: the flattened classification record per scanned URL.
-- root_types/nested_types hold the comma-joined display form; the
-- normalized tokens live in page_types.
CREATE TABLE IF NOT EXISTS scan_pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id INTEGER NOT NULL,
    url TEXT NOT NULL,
    status_code INTEGER,
    error_type TEXT,
    error_message TEXT,
    block_count INTEGER DEFAULT 0,
    root_types TEXT,
    nested_types TEXT,
    has_author BOOLEAN DEFAULT 0,
    author_name TEXT,
    published_at TEXT,
    modified_at TEXT,
    avg_update_minutes REAL DEFAULT 0,
    update_count INTEGER DEFAULT 0,
    liveblog_created TEXT,
    liveblog_modified TEXT,
    title TEXT,
    site_name TEXT,
    byline TEXT,
    excerpt TEXT,
    language TEXT,
    contains_results TEXT,        -- JSON object keyed by check key
    parse_warnings TEXT,          -- JSON array of fragment errors
    content_hash TEXT,
    cache_hit BOOLEAN DEFAULT 0,
    FOREIGN KEY (scan_id) REFERENCES scans(scan_id) ON DELETE CASCADE,
    UNIQUE(scan_id, url)
);

CREATE INDEX IF NOT EXISTS idx_scan_pages_scan ON scan_pages(scan_id);

-- Page types: one row per type token, keeping root and nested apart
-- and preserving first-seen order via ordinal
CREATE TABLE IF NOT EXISTS page_types (
    type_id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_id INTEGER NOT NULL,
    scan_id INTEGER NOT NULL,
    token TEXT NOT NULL,
    position TEXT NOT NULL CHECK (position IN ('root', 'nested')),
    ordinal INTEGER NOT NULL,
    FOREIGN KEY (page_id) REFERENCES scan_pages(page_id) ON DELETE CASCADE,
    FOREIGN KEY (scan_id) REFERENCES scans(scan_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_page_types_scan ON page_types(scan_id);
CREATE INDEX IF NOT EXISTS idx_page_types_token ON page_types(token);
`
