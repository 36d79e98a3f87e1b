package refdata

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"kidcost/internal/model"
)

func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "center-based.csv",
		"State,Infant,Toddler,Preschool\n"+
			"Texas,\"$11,160\",\"$10,080\",\"$8,640\"\n"+
			"Vermont,15000,13500,12000\n")

	rows, rowErrs, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rowErrs != 0 {
		t.Errorf("rowErrs = %d, want 0", rowErrs)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if math.Abs(rows["Texas"].Infant-11160) > 1e-9 {
		t.Errorf("Texas infant = %.2f, want 11160 (dollar/comma stripped)", rows["Texas"].Infant)
	}
	if math.Abs(rows["Vermont"].Preschool-12000) > 1e-9 {
		t.Errorf("Vermont preschool = %.2f, want 12000", rows["Vermont"].Preschool)
	}
}

func TestParseFile_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "family-care.csv",
		"State,Infant,Toddler,Preschool\n"+
			"Texas,8400,7800,7080\n"+
			"Nowhere,abc,7800,7080\n"+
			",8400,7800,7080\n"+
			"Negative,-100,7800,7080\n")

	rows, rowErrs, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1 (only Texas valid)", len(rows))
	}
	if rowErrs != 3 {
		t.Errorf("rowErrs = %d, want 3", rowErrs)
	}
}

// memCache is an in-memory DatasetCache for exercising the cache path.
type memCache struct {
	mtime map[string]int64
	size  map[string]int64
	rows  map[string]map[string]AgeCosts
	saves int
	hits  int
}

func newMemCache() *memCache {
	return &memCache{
		mtime: make(map[string]int64),
		size:  make(map[string]int64),
		rows:  make(map[string]map[string]AgeCosts),
	}
}

func (m *memCache) TrackedFile(path string) (int64, int64, bool, error) {
	mt, ok := m.mtime[path]
	return mt, m.size[path], ok, nil
}

func (m *memCache) LoadRows(path string) (map[string]AgeCosts, error) {
	m.hits++
	return m.rows[path], nil
}

func (m *memCache) SaveRows(path string, _ model.CareType, rows map[string]AgeCosts, mtimeNs, sizeBytes int64) error {
	m.saves++
	m.mtime[path] = mtimeNs
	m.size[path] = sizeBytes
	m.rows[path] = rows
	return nil
}

func TestLoadDir_ReplacesRowsAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "center-based.csv",
		"State,Infant,Toddler,Preschool\nTexas,9600,9600,9600\n")

	cache := newMemCache()
	table := Default()

	result, err := LoadDir(dir, cache, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Files != 1 || result.Loaded != 1 || result.Rows != 1 {
		t.Errorf("result = %+v, want 1 file, 1 loaded, 1 row", result)
	}
	if result.CacheHits != 0 {
		t.Errorf("first load CacheHits = %d, want 0", result.CacheHits)
	}
	if cache.saves != 1 {
		t.Errorf("cache saves = %d, want 1", cache.saves)
	}

	// CSV replaced the built-in center-based rows
	if got := table.States(model.CareCenterBased); len(got) != 1 {
		t.Errorf("center-based states = %d, want 1", len(got))
	}
	monthly, ok := table.MonthlyBase("Texas", model.CareCenterBased, model.BracketAverage, model.AgeInfant)
	if !ok || math.Abs(monthly-800) > 1e-9 {
		t.Errorf("Texas monthly = %.2f, %v, want 800.00, true", monthly, ok)
	}

	// Second load of an unchanged file comes from the cache
	table2 := Default()
	result2, err := LoadDir(dir, cache, table2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result2.CacheHits != 1 {
		t.Errorf("second load CacheHits = %d, want 1", result2.CacheHits)
	}
	if cache.saves != 1 {
		t.Errorf("unchanged file was re-saved (saves = %d)", cache.saves)
	}
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	table := Default()
	result, err := LoadDir(filepath.Join(t.TempDir(), "nope"), nil, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Files != 0 {
		t.Errorf("Files = %d, want 0", result.Files)
	}
	// Built-in data untouched
	if len(table.States(model.CareCenterBased)) != 51 {
		t.Error("missing data dir modified the built-in table")
	}
}
