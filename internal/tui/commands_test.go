package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akarst/swipestack/internal/deck"
)

func TestResolveSource(t *testing.T) {
	cases := []struct {
		raw  string
		kind sourceKind
	}{
		{"", sourceSample},
		{"   ", sourceSample},
		{"triage.json", sourceJSON},
		{"notes.txt", sourceJSON},
		{"pages.pdf", sourcePDF},
		{"PAGES.PDF", sourcePDF},
	}
	for _, tc := range cases {
		if got := resolveSource(tc.raw); got.kind != tc.kind {
			t.Fatalf("resolveSource(%q).kind = %v, want %v", tc.raw, got.kind, tc.kind)
		}
	}
	if got := resolveSource("  pages.pdf  "); got.path != "pages.pdf" {
		t.Fatalf("path not trimmed, got %q", got.path)
	}
}

func TestSourceJobKind(t *testing.T) {
	if got := (deckSource{kind: sourcePDF}).jobKind(); got != jobImport {
		t.Fatalf("pdf source job = %v, want %v", got, jobImport)
	}
	if got := (deckSource{kind: sourceSample}).jobKind(); got != jobLoad {
		t.Fatalf("sample source job = %v, want %v", got, jobLoad)
	}
}

func TestLoadDeckJobSample(t *testing.T) {
	runner := loadDeckJob(deckSource{kind: sourceSample}, "casey", 40)
	msg, err := runner(context.Background())
	if err != nil {
		t.Fatalf("sample load failed: %v", err)
	}
	result, ok := msg.(deckResultMsg)
	if !ok {
		t.Fatalf("expected deckResultMsg, got %T", msg)
	}
	if result.deck.Len() != 6 {
		t.Fatalf("sample deck has %d cards, want 6", result.deck.Len())
	}
	if !strings.Contains(result.deck.Cards[0].Body, "casey's") {
		t.Fatal("sample deck should address the reviewer by name")
	}
}

func TestLoadDeckJobMissingFile(t *testing.T) {
	source := deckSource{kind: sourceJSON, path: filepath.Join(t.TempDir(), "missing.json")}
	msg, err := loadDeckJob(source, "", 40)(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing deck file")
	}
	result, ok := msg.(deckResultMsg)
	if !ok {
		t.Fatalf("expected deckResultMsg, got %T", msg)
	}
	if result.err == nil {
		t.Fatal("result should carry the error for the update loop")
	}
}

func TestAppendJournalJobAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	msg, err := appendJournalJob(path, []deck.Entry{{Deck: "inbox triage", CardTitle: "A", Verdict: "right"}})(context.Background())
	if err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if got := msg.(journalResultMsg); got.appended != 1 || got.total != 1 {
		t.Fatalf("first append = %+v", got)
	}

	msg, err = appendJournalJob(path, []deck.Entry{{Deck: "inbox triage", CardTitle: "B", Verdict: "left"}})(context.Background())
	if err != nil {
		t.Fatalf("second append failed: %v", err)
	}
	if got := msg.(journalResultMsg); got.appended != 1 || got.total != 2 {
		t.Fatalf("second append = %+v", got)
	}
}

func TestAppendJournalJobCopiesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	entries := []deck.Entry{{Deck: "d", CardTitle: "A", Verdict: "right"}}
	runner := appendJournalJob(path, entries)
	entries[0].CardTitle = "mutated"

	if _, err := runner(context.Background()); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	recorded, err := deck.LoadJournal(path)
	if err != nil {
		t.Fatalf("LoadJournal: %v", err)
	}
	if recorded[0].CardTitle != "A" {
		t.Fatalf("journal recorded %q, the runner should capture entries at build time", recorded[0].CardTitle)
	}
}

func TestLoadingMessage(t *testing.T) {
	if got := loadingMessage(deckSource{kind: sourceSample}); got != "Dealing the sample deck…" {
		t.Fatalf("sample message = %q", got)
	}
	if got := loadingMessage(deckSource{kind: sourcePDF, path: "p.pdf"}); !strings.Contains(got, "p.pdf") {
		t.Fatalf("pdf message should name the file, got %q", got)
	}
	if got := loadingMessage(deckSource{kind: sourceJSON, path: "d.json"}); !strings.Contains(got, "d.json") {
		t.Fatalf("json message should name the file, got %q", got)
	}
}
