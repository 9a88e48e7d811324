package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.stage {
	case stageInput:
		return m.viewPrompt()
	case stageLoading:
		return m.viewLoading()
	case stageDeck:
		return m.viewDeck()
	default:
		return ""
	}
}

func (m *model) viewPrompt() string {
	parts := []string{m.heroView(), m.promptPanel()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, m.footerView())
	return joinNonEmpty("\n\n", parts...)
}

func (m *model) viewLoading() string {
	parts := []string{
		m.heroView(),
		helperStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.infoMessage)),
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	parts = append(parts, m.footerView())
	return joinNonEmpty("\n\n", parts...)
}

func (m *model) viewDeck() string {
	frame := m.ctrl.Frame()
	commit := commitProgress(m.ctrl.State(), m.ctrl.Threshold())
	parts := []string{renderStack(frame, m.deck, m.layout, m.accents, commit).String()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.helpVisible {
		parts = append(parts, keyLegendView())
	}
	parts = append(parts, m.footerView())
	return joinNonEmpty("\n\n", parts...)
}

func (m *model) promptPanel() string {
	return joinNonEmpty("\n\n",
		sectionHeaderStyle.Render("Choose a deck"),
		m.pathInput.View(),
		helperStyle.Render("Enter loads the path, a blank path loads the sample deck, Esc quits."))
}

func (m *model) footerView() string {
	m.syncLog()
	footer := []string{}
	if m.stage == stageDeck && m.ctrl != nil {
		footer = append(footer, m.meterView())
	}
	footer = append(footer, joinNonEmpty("\n\n",
		sectionHeaderStyle.Render("Session Log"),
		m.logView.View()))
	return joinNonEmpty("\n\n", footer...)
}

func (m *model) meterView() string {
	name := m.deck.Name
	if name == "" {
		name = "untitled deck"
	}
	stats := []string{
		name,
		fmt.Sprintf("card %d/%d", m.ctrl.Index()+1, m.deck.Len()),
		"x " + meterBar(m.lastDrag.X, m.ctrl.Threshold()),
		"y " + meterBar(m.lastDrag.Y, m.ctrl.Threshold()),
		fmt.Sprintf("swiped %d", m.swipeCount),
	}
	if m.journalTotal > 0 {
		stats = append(stats, fmt.Sprintf("journal %d", m.journalTotal))
	}
	if m.ctrl.Disabled() {
		stats = append(stats, "input off")
	}
	if badges := m.jobBadges(); len(badges) > 0 {
		stats = append(stats, badges...)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobBadges() []string {
	var badges []string
	for _, kind := range []jobKind{jobLoad, jobImport, jobJournal} {
		if state, ok := m.jobStates[kind]; ok {
			badges = append(badges, state.badge())
		}
	}
	return badges
}

type gestureHint struct {
	key  string
	what string
}

var gestureHints = []gestureHint{
	{"drag", "Flick the top card"},
	{"←/→ h/l", "Swipe left or right"},
	{"↑/↓ k/j", "Swipe up or down"},
	{"Enter", "Swipe the resolved edge"},
	{"d", "Toggle gesture input"},
	{"y", "Copy the top card"},
	{"r", "Load another deck"},
	{"?", "Toggle cheatsheet"},
	{"q", "Quit"},
}

func keyLegendView() string {
	chips := make([]string, len(gestureHints))
	for i, hint := range gestureHints {
		chips[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(hint.key),
			keyDescStyle.Render(" "+hint.what))
	}
	rows := []string{sectionHeaderStyle.Render("Gesture Cheatsheet")}
	for len(chips) > 0 {
		n := len(chips)
		if n > 3 {
			n = 3
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chips[:n]...))
		chips = chips[n:]
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLogo(),
		taglineStyle.Render(promptTagline),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

// renderLogo paints the wordmark with a drop shadow one cell down and right
// of every glyph, so the logotype reads as raised off the background. Each
// output row mixes the face runes of its own art line with shadow runes cast
// by the line above.
func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	rows := make([]string, 0, len(logoArtLines)+1)
	for y := 0; y <= len(logoArtLines); y++ {
		cur := logoRow(y)
		above := logoRow(y - 1)
		span := len(cur)
		if len(above)+1 > span {
			span = len(above) + 1
		}
		var b strings.Builder
		for x := 0; x < span; x++ {
			switch {
			case x < len(cur) && cur[x] != ' ':
				b.WriteString(logoFaceStyle.Render(string(cur[x])))
			case x > 0 && x-1 < len(above) && above[x-1] != ' ':
				b.WriteString(logoShadowStyle.Render(string(above[x-1])))
			default:
				b.WriteRune(' ')
			}
		}
		rows = append(rows, b.String())
	}
	return logoContainerStyle.Render(strings.Join(rows, "\n"))
}

func logoRow(y int) []rune {
	if y < 0 || y >= len(logoArtLines) {
		return nil
	}
	return []rune(logoArtLines[y])
}

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	cardBodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	underTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	underBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	heroInkColor   = lipgloss.Color("#0c3b2e")
	heroCreamColor = lipgloss.Color("#f6efdd")
	heroLeafColor  = lipgloss.Color("#7fd8be")

	taglineStyle       = lipgloss.NewStyle().Foreground(heroLeafColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroCreamColor).Background(heroInkColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06231b"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"╔═╗╦ ╦╦╔═╗╔═╗  ╔═╗╔╦╗╔═╗╔═╗╦╔═",
		"╚═╗║║║║╠═╝║╣   ╚═╗ ║ ╠═╣║  ╠╩╗",
		"╚═╝╚╩╝╩╩  ╚═╝  ╚═╝ ╩ ╩ ╩╚═╝╩ ╩",
	}
)
