package artifacts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRecordAndIsFresh(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "fingerprints.json"))

	output := filepath.Join(dir, "geography.parquet")
	if err := os.WriteFile(output, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if store.IsFresh("geography", "abc", output) {
		t.Error("Empty store reported fresh")
	}

	if err := store.Record("geography", "abc", output, 200); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if !store.IsFresh("geography", "abc", output) {
		t.Error("Recorded artifact not reported fresh")
	}
	if store.IsFresh("geography", "other", output) {
		t.Error("Different fingerprint reported fresh")
	}
	if store.IsFresh("customers", "abc", output) {
		t.Error("Unknown artifact reported fresh")
	}

	rec, ok := store.Get("geography")
	if !ok {
		t.Fatal("Get returned no record")
	}
	if rec.Rows != 200 {
		t.Errorf("Expected 200 rows, got %d", rec.Rows)
	}
	if rec.SchemaVersion != SchemaVersion {
		t.Errorf("Expected schema version %d, got %d", SchemaVersion, rec.SchemaVersion)
	}
}

func TestStoreMissingOutputIsStale(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "fingerprints.json"))

	output := filepath.Join(dir, "stores.parquet")
	if err := os.WriteFile(output, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Record("stores", "abc", output, 10); err != nil {
		t.Fatal(err)
	}

	// Deleting the output invalidates the record even though the
	// fingerprint still matches.
	if err := os.Remove(output); err != nil {
		t.Fatal(err)
	}
	if store.IsFresh("stores", "abc", output) {
		t.Error("Missing output file reported fresh")
	}
}

func TestStoreCorruptFileIsStale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fingerprints.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if store.IsFresh("geography", "abc", path) {
		t.Error("Corrupt store reported fresh instead of failing safe")
	}

	// Record must recover by rewriting the store from scratch.
	output := filepath.Join(dir, "geography.parquet")
	if err := os.WriteFile(output, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Record("geography", "abc", output, 1); err != nil {
		t.Fatalf("Record on corrupt store failed: %v", err)
	}
	if !store.IsFresh("geography", "abc", output) {
		t.Error("Record did not recover corrupt store")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fingerprints.json")
	output := filepath.Join(dir, "dates.parquet")
	if err := os.WriteFile(output, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewStore(path).Record("dates", "fp1", output, 365); err != nil {
		t.Fatal(err)
	}

	// A second store instance over the same file sees the record.
	if !NewStore(path).IsFresh("dates", "fp1", output) {
		t.Error("Record not visible across store instances")
	}
}
