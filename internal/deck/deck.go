// Package deck holds the card payloads a stack renders and the ways to get
// them: a built-in sample deck, JSON deck files, page-per-card PDF imports,
// and the append-only review journal that records swipe verdicts.
package deck

import (
	"fmt"
	"strings"
)

// Card is one renderable payload. Every field is optional; a zero Card
// renders as a blank face.
type Card struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags,omitempty"`
	Source string   `json:"source,omitempty"`
}

// Deck is an ordered sequence of cards. The stack borrows cards for
// rendering and never mutates them; only the review cursor moves.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Len returns the number of cards.
func (d Deck) Len() int { return len(d.Cards) }

// Card returns the card at i, or a zero Card when i is out of range.
func (d Deck) Card(i int) Card {
	if i < 0 || i >= len(d.Cards) {
		return Card{}
	}
	return d.Cards[i]
}

// Sample returns the built-in triage deck, personalized with the reviewer's
// name when one is given.
func Sample(reviewer string) Deck {
	owner := strings.TrimSpace(reviewer)
	possessive := "your"
	if owner != "" {
		possessive = owner + "'s"
	}

	return Deck{
		Name: "inbox triage",
		Cards: []Card{
			{
				Title: "Flaky checkout test",
				Body:  fmt.Sprintf("The payment integration test fails roughly once in twenty runs on CI. Nothing in %s recent changes touches it. Decide whether it earns a spot on this week's board.", possessive),
				Tags:  []string{"ci", "tests"},
			},
			{
				Title: "Upgrade the TLS library",
				Body:  "A minor release fixes two CVEs in the handshake path. The changelog lists no breaking changes, but the last upgrade silently altered cipher ordering.",
				Tags:  []string{"security", "deps"},
			},
			{
				Title: "Dashboard latency complaint",
				Body:  "Support forwarded a report of ten-second loads on the usage dashboard. Only one customer so far, and their workspace holds forty times the median row count.",
				Tags:  []string{"performance"},
			},
			{
				Title: "Conference CFP closes Friday",
				Body:  fmt.Sprintf("The systems track is a good match for %s migration write-up. A talk means two weeks of prep in an already tight quarter.", possessive),
				Tags:  []string{"writing"},
			},
			{
				Title: "Retry storm in the importer",
				Body:  "Last night's incident review traced the queue backlog to unbounded retries against a dead webhook. A backoff cap is a small patch; a dead-letter queue is the real fix.",
				Tags:  []string{"incident", "queue"},
			},
			{
				Title: "Intern project proposal",
				Body:  "The proposed CLI for seeding staging data overlaps with the fixtures work already underway. It could fold into that effort or carve out the anonymization piece.",
				Tags:  []string{"planning"},
			},
		},
	}
}
