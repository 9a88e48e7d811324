package deck

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Entry records one swipe verdict in the review journal.
type Entry struct {
	Deck       string    `json:"deck,omitempty"`
	CardTitle  string    `json:"cardTitle"`
	Index      int       `json:"index"`
	Verdict    string    `json:"verdict"`
	RecordedAt time.Time `json:"recordedAt"`
}

// AppendJournal appends entries to the journal file at path, creating it and
// any parent directories if necessary. An empty batch is a no-op.
func AppendJournal(path string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	existing, err := LoadJournal(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		existing = nil
	}
	existing = append(existing, entries...)
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadJournal returns all recorded entries.
func LoadJournal(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
