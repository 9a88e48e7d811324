package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarst/swipestack/internal/deck"
)

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceSample
	sourceJSON
	sourcePDF
)

type deckSource struct {
	kind sourceKind
	path string
}

// resolveSource classifies a prompt entry. A blank entry asks for the
// built-in sample deck and a .pdf suffix routes through the page importer;
// everything else is read as a JSON deck file.
func resolveSource(raw string) deckSource {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return deckSource{kind: sourceSample}
	case strings.EqualFold(filepath.Ext(raw), ".pdf"):
		return deckSource{kind: sourcePDF, path: raw}
	default:
		return deckSource{kind: sourceJSON, path: raw}
	}
}

func (s deckSource) jobKind() jobKind {
	if s.kind == sourcePDF {
		return jobImport
	}
	return jobLoad
}

func loadingMessage(source deckSource) string {
	switch source.kind {
	case sourcePDF:
		return fmt.Sprintf("Importing pages from %s…", source.path)
	case sourceJSON:
		return fmt.Sprintf("Loading %s…", source.path)
	default:
		return "Dealing the sample deck…"
	}
}

func loadDeckJob(source deckSource, reviewer string, maxCards int) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		var (
			d   deck.Deck
			err error
		)
		switch source.kind {
		case sourcePDF:
			d, err = deck.ImportPDF(source.path, maxCards)
		case sourceJSON:
			d, err = deck.Load(source.path)
		default:
			d = deck.Sample(reviewer)
		}
		if err != nil {
			return deckResultMsg{err: err}, err
		}
		return deckResultMsg{deck: d}, nil
	}
}

func appendJournalJob(path string, entries []deck.Entry) jobRunner {
	toPersist := append([]deck.Entry(nil), entries...)
	return func(ctx context.Context) (tea.Msg, error) {
		if err := deck.AppendJournal(path, toPersist); err != nil {
			return journalResultMsg{err: err}, err
		}
		recorded, err := deck.LoadJournal(path)
		if err != nil {
			return journalResultMsg{err: err}, err
		}
		return journalResultMsg{appended: len(toPersist), total: len(recorded)}, nil
	}
}

func yankCardCmd(card deck.Card) tea.Cmd {
	title := card.Title
	if title == "" {
		title = "untitled card"
	}
	return func() tea.Msg {
		text := strings.TrimSpace(card.Title + "\n\n" + card.Body)
		if text == "" {
			return yankResultMsg{err: fmt.Errorf("card is blank")}
		}
		if err := clipboard.WriteAll(text); err != nil {
			return yankResultMsg{err: err}
		}
		return yankResultMsg{title: title}
	}
}
