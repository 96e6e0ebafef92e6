package tui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gladewood/gladewood/internal/engine"
	"github.com/gladewood/gladewood/internal/world"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

// sink collects everything the engine emits during one input so the update
// loop can fold it into the view afterwards. Timers become tea.Tick commands
// so sequencer pacing runs on the program's single message loop.
type sink struct {
	lines  []engine.Line
	reveal bool
	bell   bool
	timers []pendingTimer
}

type pendingTimer struct {
	delay time.Duration
	fn    func()
}

type model struct {
	state     sessionState
	template  *world.World
	logger    *log.Logger
	eng       *engine.Engine
	sink      *sink
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
	invFlash  bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F")).
			Italic(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D7AF")).
			Bold(true)

	sylvanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF87FF")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF87")).
			Bold(true).
			Underline(true)
)

// sequencerTickMsg carries a deferred sequencer callback back onto the
// update loop.
type sequencerTickMsg struct {
	fn func()
}

func NewModel(template *world.World, logger *log.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		state:     statePlaying,
		template:  template,
		logger:    logger,
		textInput: ti,
	}
	m.newSession()
	return m
}

// newSession clones the template into a fresh engine. Used at startup and
// for /restart; the template itself is never touched.
func (m *model) newSession() {
	s := &sink{}
	hooks := engine.Hooks{
		Display: func(ln engine.Line) {
			s.lines = append(s.lines, ln)
			if ln.Kind == engine.KindDialogue && ln.Language != "" {
				s.bell = true
			}
		},
		InventoryChanged: func([]string) {},
		RevealInventory:  func() { s.reveal = true },
		Schedule: func(delay time.Duration, fn func()) {
			s.timers = append(s.timers, pendingTimer{delay: delay, fn: fn})
		},
	}
	m.sink = s
	m.gameLog = ""
	m.eng = engine.New(m.template, hooks, m.logger)
	m.eng.Start()
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.drainInit())
}

// drainInit exists because Init cannot mutate m; it re-sends the startup
// output as a message instead.
func (m model) drainInit() tea.Cmd {
	return func() tea.Msg { return sequencerTickMsg{fn: func() {}} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			text := m.textInput.Value()
			m.textInput.Reset()
			m.invFlash = false

			if text == "/quit" {
				return m, tea.Quit
			}
			if text == "/restart" {
				m.newSession()
				cmd = m.drain()
				return m, cmd
			}

			m.eng.SubmitInput(text)
			cmd = m.drain()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		}
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case sequencerTickMsg:
		msg.fn()
		cmd = m.drain()
		return m, cmd
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// drain folds collected engine output into the log and turns pending
// sequencer timers into tick commands.
func (m *model) drain() tea.Cmd {
	for _, ln := range m.sink.lines {
		m.gameLog += m.renderLine(ln) + "\n\n"
	}
	m.sink.lines = nil

	if m.sink.reveal {
		m.invFlash = true
		m.sink.reveal = false
	}

	var cmds []tea.Cmd
	if m.sink.bell {
		m.sink.bell = false
		cmds = append(cmds, ringBell)
	}
	for _, t := range m.sink.timers {
		fn := t.fn
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return sequencerTickMsg{fn: fn}
		}))
	}
	m.sink.timers = nil

	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
	return tea.Batch(cmds...)
}

// ringBell is the audio cue for the in-world language. Best effort: if the
// terminal swallows it, nothing is lost.
func ringBell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m *model) renderLine(ln engine.Line) string {
	w := m.logWidth()
	switch ln.Kind {
	case engine.KindPlayerEcho:
		return userStyle.Width(w).Render("> " + ln.Text)
	case engine.KindError:
		return errorStyle.Width(w).Render(ln.Text)
	case engine.KindDialogue:
		text := ln.Text
		style := gameStyle
		if ln.Language != "" {
			text = "♪ " + text
			style = sylvanStyle
		}
		return speakerStyle.Render(ln.Speaker) + "\n" + style.Width(w).Render(text)
	default:
		return gameStyle.Width(w).Render(ln.Text)
	}
}

func (m model) logWidth() int {
	w := int(float64(m.width) * 0.75)
	if w <= 0 {
		w = 60
	}
	return w
}

func (m model) View() string {
	switch m.state {
	case stateError:
		return fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.\n", m.err)
	}

	logView := m.viewport.View()
	stateView := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		logView,
		stateView,
	)

	help := helpStyle.Render(`Commands: /restart, /quit — or "help" in-game.`)

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	w := m.eng.World()
	room := w.CurrentRoom()

	location := titleStyle.Render("LOCATION") + "\n"
	if room != nil {
		location += room.Name + "\n\n"
	} else {
		location += "(unknown)\n\n"
	}

	exits := titleStyle.Render("EXITS") + "\n"
	if room != nil && len(room.Exits) > 0 {
		dirs := make([]string, 0, len(room.Exits))
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		exits += strings.Join(dirs, ", ") + "\n\n"
	} else {
		exits += "(none)\n\n"
	}

	invTitle := titleStyle
	if m.invFlash {
		invTitle = flashStyle
	}
	inventory := invTitle.Render("INVENTORY") + "\n"
	if len(w.Player.Inventory) == 0 {
		inventory += "(empty)"
	} else {
		for _, id := range w.Player.Inventory {
			if obj := w.Objects[id]; obj != nil {
				inventory += "- " + obj.Name + "\n"
			}
		}
	}

	content := location + exits + inventory

	stateWidth := int(float64(m.width) * 0.23)
	if stateWidth <= 0 {
		stateWidth = 24
	}
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run starts the terminal presentation over a loaded world template.
func Run(template *world.World, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(template, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
