package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarst/swipestack/internal/swipe"
	"github.com/akarst/swipestack/internal/tui"
)

// directionFlag parses an edge name into a swipe.Direction.
type directionFlag struct {
	value swipe.Direction
}

func (f *directionFlag) String() string {
	if f.value == swipe.DirectionNone {
		return ""
	}
	return f.value.String()
}

func (f *directionFlag) Set(raw string) error {
	dir, err := swipe.ParseDirection(raw)
	if err != nil {
		return err
	}
	f.value = dir
	return nil
}

// directionListFlag collects edges from repeated or comma separated values.
type directionListFlag struct {
	values []swipe.Direction
}

func (f *directionListFlag) String() string {
	parts := make([]string, 0, len(f.values))
	for _, d := range f.values {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ",")
}

func (f *directionListFlag) Set(raw string) error {
	for _, token := range strings.Split(raw, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		dir, err := swipe.ParseDirection(token)
		if err != nil {
			return err
		}
		f.values = append(f.values, dir)
	}
	return nil
}

func main() {
	defaultJournal := filepath.Join(".", "review_journal.json")
	deckPath := flag.String("deck", "", "path to a JSON deck file")
	pdfPath := flag.String("pdf", "", "import a PDF and deal its pages as cards")
	journalPath := flag.String("journal", defaultJournal, "where swipe verdicts are appended; empty disables the journal")
	reviewer := flag.String("reviewer", "", "name woven into the sample deck")
	maxCards := flag.Int("max-cards", 40, "page cap for PDF imports")
	duration := flag.Duration("duration", swipe.DefaultDuration, "length of one swipe or return animation")
	threshold := flag.Int("threshold", swipe.DefaultThreshold, "drag distance in layout units that commits a swipe")
	maxAngle := flag.Float64("max-angle", swipe.DefaultMaxAngle, "tilt in degrees at full horizontal drag")
	scale := flag.Float64("scale", swipe.DefaultScale, "resting size of the card underneath")
	disabled := flag.Bool("disabled", false, "start with gesture input off")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")

	direction := directionFlag{value: swipe.DirectionRight}
	flag.Var(&direction, "direction", "default edge for enter and untargeted swipes (left, right, top, bottom)")
	var disableDirections directionListFlag
	flag.Var(&disableDirections, "disable-direction", "edge to refuse, repeatable or comma separated")
	flag.Parse()

	if *deckPath != "" && *pdfPath != "" {
		fmt.Println("choose one of -deck or -pdf, not both")
		os.Exit(1)
	}

	stack := swipe.DefaultConfig()
	stack.Duration = *duration
	stack.Threshold = *threshold
	stack.MaxAngle = *maxAngle
	stack.Scale = *scale
	stack.IsDisabled = *disabled
	stack.Direction = direction.value
	stack.DisabledDirections = disableDirections.values

	if _, err := swipe.New(stack); err != nil {
		fmt.Println("invalid stack flags:", err)
		os.Exit(1)
	}

	journal := *journalPath
	if journal != "" {
		abs, err := filepath.Abs(journal)
		if err != nil {
			fmt.Println("failed to resolve journal path:", err)
			os.Exit(1)
		}
		journal = abs
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			DeckPath:    *deckPath,
			PDFPath:     *pdfPath,
			JournalPath: journal,
			Reviewer:    *reviewer,
			MaxCards:    *maxCards,
			Stack:       stack,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
