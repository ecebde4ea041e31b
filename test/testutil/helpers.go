// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// projectRoot returns the repository root relative to this file.
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// LoadProjectFile loads a file by its path relative to the repository root.
func LoadProjectFile(t *testing.T, relPath string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(projectRoot(t), filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("Failed to load file %s: %v", relPath, err)
	}
	return data
}

// SeedCatalogPath returns the absolute path of the bundled seed catalog.
func SeedCatalogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "internal", "adapter", "source", "seed", "catalog.json")
}

// WriteTempFile writes data into a file inside t.TempDir and returns its path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DatePtr parses a YYYY-MM-DD date and returns a pointer to it.
func DatePtr(t *testing.T, dateStr string) *time.Time {
	t.Helper()
	parsed := MustParseDate(t, dateStr)
	return &parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for budget bounds and stored prices.
func FloatPtr(f float64) *float64 {
	return &f
}

// Budget builds a budget range; a negative bound means "absent".
func Budget(lo, hi float64) *domain.BudgetRange {
	b := &domain.BudgetRange{}
	if lo >= 0 {
		b.Min = FloatPtr(lo)
	}
	if hi >= 0 {
		b.Max = FloatPtr(hi)
	}
	return b
}

// IDs returns the itinerary ids of a result list, in order.
func IDs(results []domain.ScoredItinerary) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}
