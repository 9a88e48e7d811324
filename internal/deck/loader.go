package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxBodyRunes caps imported card bodies so a dense PDF page stays readable
// on a card face.
const maxBodyRunes = 600

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// Load reads a JSON deck file. A missing name falls back to the file name.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, err
	}
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	if strings.TrimSpace(d.Name) == "" {
		d.Name = deckName(path)
	}
	return d, nil
}

// ImportPDF builds a deck with one card per page of the document at path.
// Blank pages are skipped. maxCards caps the deck size; zero or negative
// means no cap.
func ImportPDF(path string, maxCards int) (Deck, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	total := reader.NumPage()
	if maxCards <= 0 || maxCards > total {
		maxCards = total
	}
	source := filepath.Base(path)
	cards := make([]Card, 0, maxCards)
	for i := 1; i <= total && len(cards) < maxCards; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Deck{}, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		body := normalizeWhitespace(text)
		if body == "" {
			continue
		}
		cards = append(cards, Card{
			Title:  fmt.Sprintf("Page %d of %d", i, total),
			Body:   clip(body, maxBodyRunes),
			Source: source,
		})
	}
	return Deck{Name: deckName(path), Cards: cards}, nil
}

func deckName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalizeWhitespace(s string) string {
	return extraneousWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// clip truncates s to at most n runes, marking the cut with an ellipsis.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
