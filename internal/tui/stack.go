package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/akarst/swipestack/internal/deck"
	"github.com/akarst/swipestack/internal/swipe"
)

// canvas is a grid of styled cells the stack composes into. Cards blit onto
// it in paint order, later writes covering earlier ones, which is all the
// z-ordering a two-card stack needs.
type canvas struct {
	width  int
	height int
	cells  []canvasCell
}

type canvasCell struct {
	r     rune
	style *lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: width, height: height, cells: make([]canvasCell, width*height)}
}

func (cv *canvas) set(col, row int, r rune, style *lipgloss.Style) {
	if col < 0 || col >= cv.width || row < 0 || row >= cv.height {
		return
	}
	cv.cells[row*cv.width+col] = canvasCell{r: r, style: style}
}

// writeString lays one line of text onto the canvas, clipping at the edges.
func (cv *canvas) writeString(col, row int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		cv.set(col+i, row, r, style)
	}
}

// String renders the grid, styling runs of identically styled cells in one
// pass to keep the frame payload small.
func (cv *canvas) String() string {
	var b strings.Builder
	run := make([]rune, 0, cv.width)
	var runStyle *lipgloss.Style
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle != nil {
			b.WriteString(runStyle.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}
	for row := 0; row < cv.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cv.width; col++ {
			cell := cv.cells[row*cv.width+col]
			if cell.r == 0 {
				cell.r = ' '
			}
			if cell.style != runStyle {
				flush()
				runStyle = cell.style
			}
			run = append(run, cell.r)
		}
		flush()
	}
	return b.String()
}

// cardSkin is the style set for one card face.
type cardSkin struct {
	border *lipgloss.Style
	title  *lipgloss.Style
	body   *lipgloss.Style
	tag    *lipgloss.Style
}

// topSkin colors the draggable card. The border glows from the card's own
// accent toward the commit color as the drag closes in on the threshold.
func topSkin(accent colorful.Color, commit float64) cardSkin {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(accent.BlendLuv(commitGlow, commit*0.7).Hex()))
	tag := lipgloss.NewStyle().Foreground(lipgloss.Color(accent.Hex())).Italic(true)
	return cardSkin{border: &border, title: &cardTitleStyle, body: &cardBodyStyle, tag: &tag}
}

// underSkin fades the accent toward the background so the card underneath
// reads as parked.
func underSkin(accent colorful.Color) cardSkin {
	faded := accent.BlendLuv(parkedFade, 0.55)
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(faded.Hex()))
	tag := lipgloss.NewStyle().Foreground(lipgloss.Color(faded.Hex()))
	return cardSkin{border: &border, title: &underTitleStyle, body: &underBodyStyle, tag: &tag}
}

type faceLineKind int

const (
	lineBlank faceLineKind = iota
	lineTitle
	lineBody
	lineTag
)

type faceLine struct {
	text string
	kind faceLineKind
}

func (s cardSkin) styleFor(kind faceLineKind) *lipgloss.Style {
	switch kind {
	case lineTitle:
		return s.title
	case lineTag:
		return s.tag
	default:
		return s.body
	}
}

// faceLines fits a card's text into a width×height interior: title up top,
// wrapped body below, tags pinned to the last line. A zero card yields a
// blank face.
func faceLines(card deck.Card, width, height int) []faceLine {
	lines := make([]faceLine, height)
	if width <= 0 || height <= 0 {
		return lines
	}
	row := 0
	if card.Title != "" {
		lines[0] = faceLine{text: truncate(card.Title, width), kind: lineTitle}
		row = 1
		if height > 2 {
			row = 2
		}
	}
	tagText := cardTagLine(card)
	bodyRows := height - row
	if tagText != "" {
		bodyRows--
	}
	if card.Body != "" && bodyRows > 0 {
		wrapped := strings.Split(wordwrap.String(card.Body, width), "\n")
		for i := 0; i < len(wrapped) && i < bodyRows; i++ {
			lines[row+i] = faceLine{text: truncate(wrapped[i], width), kind: lineBody}
		}
	}
	if tagText != "" {
		lines[height-1] = faceLine{text: truncate(tagText, width), kind: lineTag}
	}
	return lines
}

func cardTagLine(card deck.Card) string {
	if len(card.Tags) > 0 {
		parts := make([]string, 0, len(card.Tags))
		for _, tag := range card.Tags {
			parts = append(parts, "#"+tag)
		}
		return strings.Join(parts, " ")
	}
	return card.Source
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}

// drawCard paints one card face. shear shifts each row horizontally, which
// is how a rotation survives on a cell grid; nil draws the face straight.
func drawCard(cv *canvas, col, row, width, height int, card deck.Card, skin cardSkin, shear func(row int) int) {
	if width < 4 || height < 3 {
		return
	}
	lines := faceLines(card, width-4, height-2)
	for r := 0; r < height; r++ {
		x := col
		if shear != nil {
			x += shear(r)
		}
		switch r {
		case 0:
			cv.writeString(x, row, "╭"+strings.Repeat("─", width-2)+"╮", skin.border)
		case height - 1:
			cv.writeString(x, row+r, "╰"+strings.Repeat("─", width-2)+"╯", skin.border)
		default:
			cv.writeString(x+1, row+r, strings.Repeat(" ", width-2), nil)
			cv.set(x, row+r, '│', skin.border)
			line := lines[r-1]
			if line.text != "" {
				cv.writeString(x+2, row+r, line.text, skin.styleFor(line.kind))
			}
			cv.set(x+width-1, row+r, '│', skin.border)
		}
	}
}

// shearShift is the per-row x offset that approximates rotating the face by
// angle: rows above the card center slide one way, rows below the other.
func shearShift(angle float64, row, height int) int {
	center := float64(height-1) / 2
	offsetUnits := (float64(row) - center) * unitsPerRow
	return unitsToCols(-math.Tan(angle) * offsetUnits)
}

// renderStack draws the frame's two live cards onto a fresh canvas, the
// parked card first so the top card covers it.
func renderStack(frame swipe.Frame, cards deck.Deck, l stackLayout, accents []colorful.Color, commit float64) *canvas {
	cv := newCanvas(l.stackWidth, l.stackHeight)
	anchorCol, anchorRow := l.anchor()
	if frame.Under != nil {
		u := frame.Under
		w := int(math.Round(float64(l.cardWidth) * u.Scale))
		h := int(math.Round(float64(l.cardHeight) * u.Scale))
		col := anchorCol + unitsToCols(u.Offset.X) + (l.cardWidth-w)/2
		row := anchorRow + unitsToRows(u.Offset.Y) + (l.cardHeight-h)/2
		drawCard(cv, col, row, w, h, cards.Card(u.Index), underSkin(accentFor(accents, u.Index)), nil)
	}
	if frame.Top != nil {
		top := frame.Top
		col := anchorCol + unitsToCols(top.Offset.X)
		row := anchorRow + unitsToRows(top.Offset.Y)
		shear := func(r int) int { return shearShift(top.Angle, r, l.cardHeight) }
		drawCard(cv, col, row, l.cardWidth, l.cardHeight, cards.Card(top.Index), topSkin(accentFor(accents, top.Index), commit), shear)
	}
	if frame.Top == nil && frame.Under == nil {
		notice := "the deck is empty"
		cv.writeString((l.stackWidth-len(notice))/2, l.stackHeight/2, notice, &helperStyle)
	}
	return cv
}

// commitProgress measures how far the current drag has traveled toward the
// threshold, saturating at one.
func commitProgress(s swipe.DragState, threshold float64) float64 {
	p := math.Max(math.Abs(s.Left), math.Abs(s.Top)) / threshold
	return math.Min(p, 1)
}

// meterBar renders |value| against the threshold in eight steps.
func meterBar(value, threshold float64) string {
	const width = 8
	filled := int(math.Round(math.Abs(value) / threshold * width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// deckAccents assigns each card a hue, stepping the wheel by the golden
// angle so neighbors stay distinct at any deck size.
func deckAccents(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		hue := math.Mod(24+float64(i)*137.5, 360)
		out[i] = colorful.Hsl(hue, 0.58, 0.66)
	}
	return out
}

func accentFor(accents []colorful.Color, index int) colorful.Color {
	if len(accents) == 0 || index < 0 {
		return fallbackAccent
	}
	return accents[index%len(accents)]
}

var (
	commitGlow     = colorful.Color{R: 1.0, G: 0.82, B: 0.4}
	parkedFade     = colorful.Color{R: 0.23, G: 0.25, B: 0.29}
	fallbackAccent = colorful.Color{R: 0.18, G: 0.77, B: 0.65}
)
