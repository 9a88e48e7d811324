package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/akarst/swipestack/internal/deck"
	"github.com/akarst/swipestack/internal/swipe"
)

// Config wires runtime options into the TUI program.
type Config struct {
	DeckPath    string
	PDFPath     string
	JournalPath string
	Reviewer    string
	MaxCards    int
	Stack       swipe.Config
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	pathInput := textinput.New()
	pathInput.Placeholder = pathPlaceholder
	pathInput.Focus()
	pathInput.CharLimit = 200
	pathInput.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	logView := viewport.New(98, 6)
	logView.MouseWheelEnabled = true

	m := &model{
		config:      config,
		stage:       stageInput,
		pathInput:   pathInput,
		spinner:     spin,
		logView:     logView,
		layout:      newStackLayout(config.Stack.Padding),
		jobs:        newJobBus(),
		jobStates:   map[jobKind]jobState{},
		logDirty:    true,
		infoMessage: "Point SwipeStack at a deck to start triaging.",
	}
	if config.PDFPath != "" {
		m.source = deckSource{kind: sourcePDF, path: config.PDFPath}
	} else if config.DeckPath != "" {
		m.source = resolveSource(config.DeckPath)
	}
	if m.source.kind != sourceNone {
		m.stage = stageLoading
		m.infoMessage = loadingMessage(m.source)
	}
	return m
}

type model struct {
	config Config
	stage  stage

	pathInput textinput.Model
	spinner   spinner.Model
	logView   viewport.Model

	layout    stackLayout
	jobs      *jobBus
	jobStates map[jobKind]jobState

	source  deckSource
	deck    deck.Deck
	ctrl    *swipe.Controller
	remote  *swipe.Remote
	accents []colorful.Color

	dragging  bool
	dragMoved bool
	lastCol   int
	lastRow   int

	lastDrag  swipe.Offset
	lastFrame time.Time

	pending      []deck.Entry
	journalTotal int
	swipeCount   int

	events   []string
	logDirty bool

	helpVisible  bool
	infoMessage  string
	errorMessage string
}

type frameTickMsg time.Time

type deckResultMsg struct {
	deck deck.Deck
	err  error
}

type journalResultMsg struct {
	appended int
	total    int
	err      error
}

type yankResultMsg struct {
	title string
	err   error
}

func (m *model) Init() tea.Cmd {
	if m.stage == stageLoading {
		return tea.Batch(m.spinner.Tick, m.startLoad())
	}
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case frameTickMsg:
		return m.handleFrameTick(time.Time(msg))
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.logView.Width = m.layout.logWidth
		m.logView.Height = m.layout.logHeight
		if m.ctrl != nil {
			m.ctrl.SetViewport(m.layout.viewportUnits())
		}
		m.logDirty = true
		return m, nil
	case jobBeganMsg:
		m.jobStates[msg.State.Kind] = msg.State
		return m, nil
	case jobDoneMsg:
		m.jobStates[msg.State.Kind] = msg.State
		return m.handleJobPayload(msg.Payload)
	case yankResultMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("yank failed: %v", msg.err)
		} else {
			m.infoMessage = fmt.Sprintf("Copied %q.", msg.title)
			m.logEvent(fmt.Sprintf("copied %q to the clipboard", msg.title))
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleJobPayload(payload tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := payload.(type) {
	case deckResultMsg:
		return m.handleDeckResult(msg)
	case journalResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.logEvent("journal write failed: " + msg.err.Error())
			return m, nil
		}
		m.journalTotal = msg.total
		m.logEvent(fmt.Sprintf("journal grew by %d, %d on file", msg.appended, msg.total))
		return m, nil
	}
	return m, nil
}

func (m *model) handleDeckResult(msg deckResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.stage = stageInput
		m.pathInput.Focus()
		m.errorMessage = msg.err.Error()
		m.infoMessage = "Try another deck source."
		return m, textinput.Blink
	}
	m.deck = msg.deck
	if err := m.mountController(); err != nil {
		m.stage = stageInput
		m.pathInput.Focus()
		m.errorMessage = err.Error()
		m.infoMessage = "Adjust the stack flags and retry."
		return m, textinput.Blink
	}
	m.stage = stageDeck
	m.accents = deckAccents(m.deck.Len())
	m.helpVisible = false
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Loaded %q. Drag a card or use the arrow keys.", m.deck.Name)
	m.logEvent(fmt.Sprintf("loaded %q (%d cards)", m.deck.Name, m.deck.Len()))
	m.lastFrame = time.Now()
	return m, frameTick()
}

// mountController builds a fresh controller sized to the loaded deck. The
// event hooks close over the model; they run inside Update, so mutating it
// from them is safe.
func (m *model) mountController() error {
	cfg := m.config.Stack
	cfg.DeckSize = m.deck.Len()
	m.remote = swipe.NewRemote()
	cfg.Remote = m.remote
	cfg.Callbacks = swipe.Callbacks{
		OnSwipe:           m.onSwipe,
		OnEnd:             m.onEnd,
		OnTapDisabled:     m.onTapDisabled,
		BeforeSwipe:       m.onBeforeSwipe,
		OnDrag:            m.onDrag,
		OnItemIndexChange: m.onIndexChange,
	}
	ctrl, err := swipe.New(cfg)
	if err != nil {
		return err
	}
	ctrl.SetViewport(m.layout.viewportUnits())
	m.ctrl = ctrl
	m.lastDrag = swipe.Offset{}
	m.swipeCount = 0
	m.pending = nil
	m.dragging = false
	return nil
}

func (m *model) onSwipe(index int, dir swipe.Direction) {
	card := m.deck.Card(index)
	title := card.Title
	if title == "" {
		title = fmt.Sprintf("card %d", index+1)
	}
	m.swipeCount++
	m.logEvent(fmt.Sprintf("%q left through the %s edge", title, dir))
	if m.config.JournalPath != "" {
		m.pending = append(m.pending, deck.Entry{
			Deck:       m.deck.Name,
			CardTitle:  card.Title,
			Index:      index,
			Verdict:    dir.String(),
			RecordedAt: time.Now(),
		})
	}
}

func (m *model) onEnd() {
	m.logEvent("deck exhausted, wrapped back to the first card")
}

func (m *model) onTapDisabled() {
	m.infoMessage = "Gestures are off. Press d to enable them."
	m.logEvent("tap ignored while input is disabled")
}

func (m *model) onBeforeSwipe(dir swipe.Direction) {
	m.logEvent(fmt.Sprintf("committing toward %s", dir))
}

func (m *model) onDrag(offset swipe.Offset) {
	m.lastDrag = offset
}

func (m *model) onIndexChange(index int) {
	m.logEvent(fmt.Sprintf("cursor on card %d/%d", index+1, m.deck.Len()))
}

func (m *model) logEvent(line string) {
	entry := fmt.Sprintf("%s  %s", time.Now().Format("15:04:05"), line)
	m.events = append(m.events, entry)
	if len(m.events) > maxLogLines {
		m.events = m.events[len(m.events)-maxLogLines:]
	}
	m.logDirty = true
}

// handleFrameTick advances both animation machines by the elapsed wall time
// and flushes any verdicts the completed cycle produced to the journal.
func (m *model) handleFrameTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.stage != stageDeck || m.ctrl == nil {
		return m, nil
	}
	dt := now.Sub(m.lastFrame)
	m.lastFrame = now
	if dt <= 0 || dt > time.Second {
		dt = frameInterval
	}
	m.ctrl.Advance(dt)
	cmds := []tea.Cmd{frameTick()}
	if len(m.pending) > 0 {
		cmds = append(cmds, m.jobs.Start(jobJournal, appendJournalJob(m.config.JournalPath, m.pending)))
		m.pending = nil
	}
	return m, tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageInput:
		return m.handlePromptKey(key)
	case stageLoading:
		if key.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		return m, nil
	case stageDeck:
		return m.handleDeckKey(key)
	}
	return m, nil
}

func (m *model) handlePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.source = resolveSource(m.pathInput.Value())
		m.stage = stageLoading
		m.errorMessage = ""
		m.infoMessage = loadingMessage(m.source)
		m.pathInput.Blur()
		return m, tea.Batch(m.spinner.Tick, m.startLoad())
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(key)
	return m, cmd
}

func (m *model) startLoad() tea.Cmd {
	return m.jobs.Start(m.source.jobKind(), loadDeckJob(m.source, m.config.Reviewer, m.config.MaxCards))
}

func (m *model) handleDeckKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		if m.helpVisible {
			m.helpVisible = false
			return m, nil
		}
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.remote.SwipeLeft()
	case "right", "l":
		m.remote.SwipeRight()
	case "up", "k":
		m.remote.SwipeTop()
	case "down", "j":
		m.remote.SwipeBottom()
	case "enter", " ", "space":
		m.remote.Swipe()
	case "d":
		m.ctrl.SetDisabled(!m.ctrl.Disabled())
		if m.ctrl.Disabled() {
			m.infoMessage = "Gestures disabled. Keys still swipe, taps now report."
			m.logEvent("gesture input disabled")
		} else {
			m.infoMessage = "Gestures enabled."
			m.logEvent("gesture input enabled")
		}
	case "y":
		return m, yankCardCmd(m.deck.Card(m.ctrl.Index()))
	case "?":
		m.helpVisible = !m.helpVisible
	case "r":
		m.stage = stageInput
		m.ctrl = nil
		m.remote = nil
		m.deck = deck.Deck{}
		m.accents = nil
		m.dragging = false
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		m.errorMessage = ""
		m.infoMessage = "Point SwipeStack at a deck to start triaging."
		return m, textinput.Blink
	}
	return m, nil
}

// handleMouse turns the PTY's cell-grained pointer stream into the drag
// lifecycle: the first left-button event grabs the card, further ones fold
// deltas in, and the release either classifies the gesture or, when the
// pointer never moved, reports a tap.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.stage != stageDeck || m.ctrl == nil {
		return m, nil
	}
	switch msg.Type {
	case tea.MouseWheelUp, tea.MouseWheelDown:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	case tea.MouseLeft:
		if !m.dragging {
			m.dragging = true
			m.dragMoved = false
			m.lastCol = msg.X
			m.lastRow = msg.Y
			m.ctrl.DragStart(msg.Y < m.layout.cardMidRow())
			return m, nil
		}
		dx := colsToUnits(msg.X - m.lastCol)
		dy := rowsToUnits(msg.Y - m.lastRow)
		if dx != 0 || dy != 0 {
			m.dragMoved = true
			m.lastCol = msg.X
			m.lastRow = msg.Y
			m.ctrl.DragUpdate(dx, dy)
		}
		return m, nil
	case tea.MouseRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if m.dragMoved {
			m.ctrl.DragEnd()
		} else {
			m.ctrl.Tap()
		}
		return m, nil
	}
	return m, nil
}

func (m *model) syncLog() {
	if !m.logDirty {
		return
	}
	m.logDirty = false
	if len(m.events) == 0 {
		m.logView.SetContent(helperStyle.Render("Swipe verdicts and job activity land here."))
		return
	}
	m.logView.SetContent(strings.Join(m.events, "\n"))
	m.logView.GotoBottom()
}
