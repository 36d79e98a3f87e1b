package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS dataset_rows (
    file_path   TEXT NOT NULL,
    care_type   TEXT NOT NULL,
    state       TEXT NOT NULL,
    infant      REAL NOT NULL,
    toddler     REAL NOT NULL,
    preschool   REAL NOT NULL,
    PRIMARY KEY (file_path, state)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path   TEXT PRIMARY KEY,
    mtime_ns    INTEGER NOT NULL,
    size_bytes  INTEGER NOT NULL,
    parsed_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dataset_rows_path ON dataset_rows(file_path);
`
