package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesDeckFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pitches.json")
	payload := `{
  "name": "feature pitches",
  "cards": [
    {"title": "Dark mode", "body": "Theme the dashboard.", "tags": ["ui"]},
    {"title": "Bulk export", "body": "Stream CSVs."}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Name != "feature pitches" {
		t.Fatalf("name = %q, want %q", d.Name, "feature pitches")
	}
	if d.Len() != 2 {
		t.Fatalf("got %d cards, want 2", d.Len())
	}
	if d.Cards[0].Title != "Dark mode" || len(d.Cards[0].Tags) != 1 {
		t.Fatalf("first card parsed wrong: %+v", d.Cards[0])
	}
}

func TestLoadFallsBackToFileName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "weekly-review.json")
	if err := os.WriteFile(path, []byte(`{"cards": []}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Name != "weekly-review" {
		t.Fatalf("name = %q, want file-derived %q", d.Name, "weekly-review")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte(`{"cards": [`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadMissingFileReportsError(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing deck file")
	}
}

func TestImportPDFMissingFileReportsError(t *testing.T) {
	t.Parallel()

	if _, err := ImportPDF(filepath.Join(t.TempDir(), "absent.pdf"), 0); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

func TestNormalizeWhitespaceCollapsesRuns(t *testing.T) {
	t.Parallel()

	got := normalizeWhitespace("  a\n\n b\t\tc  ")
	if got != "a b c" {
		t.Fatalf("normalized = %q, want %q", got, "a b c")
	}
}
