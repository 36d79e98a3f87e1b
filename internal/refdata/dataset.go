package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kidcost/internal/model"
)

// Dataset file names recognized in a data directory, one per care type.
var datasetFiles = map[string]model.CareType{
	"center-based.csv": model.CareCenterBased,
	"family-care.csv":  model.CareFamilyCare,
}

// LoadResult reports what dataset loading did.
type LoadResult struct {
	Files     int // dataset files found
	Loaded    int // files parsed (or served from cache)
	CacheHits int
	Rows      int // state rows applied to the table
	RowErrors int // malformed rows skipped
}

// DatasetCache is the persistence hook for parsed datasets. Implemented by
// the sqlite store; nil disables caching.
type DatasetCache interface {
	TrackedFile(path string) (mtimeNs, sizeBytes int64, ok bool, err error)
	LoadRows(path string) (map[string]AgeCosts, error)
	SaveRows(path string, care model.CareType, rows map[string]AgeCosts, mtimeNs, sizeBytes int64) error
}

// LoadDir reads dataset CSVs from dir and applies them to the table,
// replacing the built-in rows for each care type found. Unchanged files
// are served from the cache when one is provided.
func LoadDir(dir string, cache DatasetCache, t *Table) (*LoadResult, error) {
	result := &LoadResult{}

	for name, care := range datasetFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return result, fmt.Errorf("stat %s: %w", path, err)
		}
		result.Files++

		mtimeNs := info.ModTime().UnixNano()
		size := info.Size()

		if cache != nil {
			cm, cs, ok, err := cache.TrackedFile(path)
			if err == nil && ok && cm == mtimeNs && cs == size {
				rows, err := cache.LoadRows(path)
				if err == nil && len(rows) > 0 {
					t.SetRows(care, rows)
					result.Loaded++
					result.CacheHits++
					result.Rows += len(rows)
					continue
				}
			}
		}

		rows, rowErrs, err := ParseFile(path)
		if err != nil {
			return result, err
		}
		result.RowErrors += rowErrs
		if len(rows) == 0 {
			continue
		}

		t.SetRows(care, rows)
		result.Loaded++
		result.Rows += len(rows)

		if cache != nil {
			// Cache write failures are non-fatal; next run reparses.
			_ = cache.SaveRows(path, care, rows, mtimeNs, size)
		}
	}

	return result, nil
}

// ParseFile parses one dataset CSV. The expected header is
// State,Infant,Toddler,Preschool with annual USD amounts. Malformed rows
// are skipped and counted rather than failing the whole file.
func ParseFile(path string) (map[string]AgeCosts, int, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the user's --data-dir
	if err != nil {
		return nil, 0, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	// Skip a header row if present
	start := 0
	if strings.EqualFold(records[0][0], "state") {
		start = 1
	}

	rows := make(map[string]AgeCosts, len(records))
	rowErrs := 0
	for _, rec := range records[start:] {
		state := strings.TrimSpace(rec[0])
		if state == "" {
			rowErrs++
			continue
		}
		infant, err1 := parseAmount(rec[1])
		toddler, err2 := parseAmount(rec[2])
		preschool, err3 := parseAmount(rec[3])
		if err1 != nil || err2 != nil || err3 != nil {
			rowErrs++
			continue
		}
		rows[state] = AgeCosts{Infant: infant, Toddler: toddler, Preschool: preschool}
	}

	return rows, rowErrs, nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	return v, nil
}
