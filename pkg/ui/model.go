package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/config"
	"github.com/vanderheijden86/walkthrough/pkg/walkthrough"
)

// statusFlashDuration is how long a status line stays in the footer.
const statusFlashDuration = 2 * time.Second

// Default size used until the terminal reports its own.
const (
	defaultWidth  = 100
	defaultHeight = 40
)

// ConfigUpdatedMsg carries a reloaded config into the program.
type ConfigUpdatedMsg struct {
	Config config.Config
}

// statusClearMsg clears the status line set by flash number seq.
type statusClearMsg struct {
	seq int
}

// WaitForConfigCmd waits for the next config on ch. It returns nil once ch
// is closed.
func WaitForConfigCmd(ch <-chan config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigUpdatedMsg{Config: cfg}
	}
}

// Model is the Bubble Tea model for the walkthrough.
type Model struct {
	steps []catalog.Step
	title string

	// Single source of truth for navigation. Animations read it, never write it.
	state *walkthrough.State

	theme   Theme
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	console viewport.Model
	md      *MarkdownRenderer

	cfg      config.Config
	skipAnim bool
	log      *zap.Logger
	updates  <-chan config.Config

	content   contentTransition
	fills     connectorFills
	entrance  consoleEntrance
	animating bool // A frame tick is in flight
	spinning  bool // A spinner tick is in flight

	width  int
	height int

	status    string
	statusSeq int

	copyFn func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithSkipAnimations settles every transition instantly.
func WithSkipAnimations() Option {
	return func(m *Model) { m.skipAnim = true }
}

// WithConfig applies cfg to the model.
func WithConfig(cfg config.Config) Option {
	return func(m *Model) { m.cfg = cfg }
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithConfigUpdates makes the model apply every config received on ch.
func WithConfigUpdates(ch <-chan config.Config) Option {
	return func(m *Model) { m.updates = ch }
}

// WithClipboard replaces the function used to copy the console log.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyFn = fn }
}

// NewModel creates a walkthrough at step 1.
func NewModel(opts ...Option) Model {
	steps := catalog.Steps()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		steps:   steps,
		title:   catalog.Title,
		state:   walkthrough.New(len(steps)),
		theme:   DefaultTheme(lipgloss.DefaultRenderer()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		console: newConsoleViewport(),
		cfg:     config.DefaultConfig(),
		log:     zap.NewNop(),
		fills:   newConnectorFills(len(steps)),
		width:   defaultWidth,
		height:  defaultHeight,
		copyFn:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.spinner.Style = m.theme.Renderer.NewStyle().Foreground(accentColor("#3B82F6"))
	m.md = NewMarkdownRenderer(cardInnerWidth(m.dims().cardWidth), m.theme.Renderer.HasDarkBackground())
	m.content = newContentTransition(m.state.Current())
	m.entrance.sync(m.currentStep().HasTerminal(), false)
	m.spinning = m.wantsSpinner() // Init starts the first tick
	m.resize()
	m.loadConsole()
	return m
}

// State exposes the navigation state for inspection.
func (m Model) State() *walkthrough.State {
	return m.state
}

func (m Model) currentStep() catalog.Step {
	return m.steps[m.state.Current()-1]
}

func (m Model) animate() bool {
	return m.cfg.UI.Animations && !m.skipAnim
}

// Init starts the spinner on the setup step and listens for config reloads.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.updates != nil {
		cmds = append(cmds, WaitForConfigCmd(m.updates))
	}
	if m.wantsSpinner() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) wantsSpinner() bool {
	return m.currentStep().Interface == catalog.Setup
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.loadConsole()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m.handleFrame()

	case spinner.TickMsg:
		if !m.wantsSpinner() {
			m.spinning = false
			return m, nil
		}
		m.spinning = true
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConfigUpdatedMsg:
		m.applyConfig(msg.Config)
		cmd := tea.Batch(m.startFrames(), WaitForConfigCmd(m.updates))
		return m, cmd

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.loadConsole()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.nextEnabled(m.state.Current()) {
			return m.navigate(m.state.Current()+1, "next")
		}
		return m, nil
	case key.Matches(msg, m.keys.Previous):
		if m.state.Current() > 1 {
			return m.navigate(m.state.Current()-1, "previous")
		}
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		id := int(msg.String()[0] - '0')
		if id <= len(m.steps) {
			return m.navigate(id, "marker")
		}
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.console.LineUp(max(m.console.Height-1, 1))
		return m, nil
	case key.Matches(msg, m.keys.ScrollDn):
		m.console.LineDown(max(m.console.Height-1, 1))
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyLog()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.UI.Mouse {
		return m, nil
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y != railRow {
			return m, nil
		}
		if id := markerAt(msg.X, m.width, len(m.steps)); id > 0 {
			return m.navigate(id, "mouse")
		}
	case msg.Button == tea.MouseButtonWheelUp:
		m.console.LineUp(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.console.LineDown(1)
	}
	return m, nil
}

// navigate routes a request through the navigation guard and, when it is
// accepted, lines up the animations for the new step.
func (m Model) navigate(target int, source string) (tea.Model, tea.Cmd) {
	from := m.state.Current()
	accepted := m.state.AdvanceTo(target)
	m.log.Debug("navigate",
		zap.String("source", source),
		zap.Int("from", from),
		zap.Int("target", target),
		zap.Bool("accepted", accepted),
		zap.Int("frontier", m.state.Frontier()),
	)
	if !accepted {
		return m, nil
	}

	animate := m.animate()
	need := m.content.retarget(m.state.Current(), animate)
	if animate {
		need = m.fills.pending(m.state.IsCompleted) || need
	} else {
		m.fills.settle(m.state.IsCompleted)
	}
	if m.entrance.sync(m.currentStep().HasTerminal(), animate) {
		need = true
	}
	m.loadConsole()

	var cmds []tea.Cmd
	if need {
		cmds = append(cmds, m.startFrames())
	}
	if m.wantsSpinner() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// startFrames schedules a frame tick unless one is already pending.
func (m *Model) startFrames() tea.Cmd {
	if m.animating || !m.animationsPending() {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func (m Model) animationsPending() bool {
	return m.content.phase != phaseIdle ||
		m.fills.pending(m.state.IsCompleted) ||
		(m.entrance.mounted && m.entrance.elapsed < consoleEntranceTotal)
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.animate() {
		m.settle()
		m.animating = false
		return m, nil
	}
	running := m.content.advance(frameInterval)
	if m.fills.advance(frameInterval, m.state.IsCompleted) {
		running = true
	}
	if m.entrance.advance(frameInterval) {
		running = true
	}
	if !running {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

// settle jumps every animation to its final frame.
func (m *Model) settle() {
	m.content = m.content.settle()
	m.fills.settle(m.state.IsCompleted)
	m.entrance.settle()
}

func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	m.log.Debug("config reloaded",
		zap.Bool("animations", cfg.UI.Animations),
		zap.Bool("mouse", cfg.UI.Mouse),
		zap.String("layout", cfg.UI.Layout),
		zap.Int("console_height", cfg.UI.ConsoleHeight),
	)
	if !m.animate() {
		m.settle()
	}
	m.resize()
	m.loadConsole()
}

func (m Model) copyLog() (tea.Model, tea.Cmd) {
	step := m.currentStep()
	if !step.HasTerminal() {
		return m, nil
	}
	if err := m.copyFn(step.Terminal); err != nil {
		m.log.Warn("clipboard copy failed", zap.Error(err))
		return m.flash("Clipboard unavailable: " + err.Error())
	}
	return m.flash("Copied console log to clipboard")
}

func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return m, tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// layoutDims are the widths derived from the terminal width and config.
type layoutDims struct {
	columns      bool
	contentWidth int // Column holding the sliding card
	cardWidth    int
	mockupWidth  int
	consoleWidth int
}

func (m Model) dims() layoutDims {
	w := m.width
	columns := false
	switch m.cfg.UI.Layout {
	case config.LayoutColumns:
		columns = true
	case config.LayoutStacked:
		columns = false
	default:
		columns = w >= columnsBreakpoint
	}

	var d layoutDims
	d.columns = columns
	if columns {
		d.cardWidth = contentCardWidth
		d.contentWidth = contentCardWidth + 2*slideCols
		d.mockupWidth = min(max(w-d.contentWidth-SpaceSM, mockupMinWidth), mockupMaxWidth)
		d.consoleWidth = d.contentWidth + SpaceSM + d.mockupWidth
	} else {
		d.cardWidth = min(max(w-2*slideCols, 24), 72)
		d.contentWidth = d.cardWidth + 2*slideCols
		d.mockupWidth = min(max(w-2*slideCols, 24), mockupMaxWidth)
		d.consoleWidth = min(max(w-2*slideCols, 24), 80)
	}
	return d
}

func (m *Model) resize() {
	d := m.dims()
	m.md.SetWidth(cardInnerWidth(d.cardWidth))
	m.help.Width = m.width
	m.console.Width = consoleInnerWidth(d.consoleWidth)
}

// renderBody lays out the content card and the mockup, centered in the
// terminal width.
func (m Model) renderBody(d layoutDims) string {
	content := m.renderContent(d.contentWidth, d.cardWidth)
	mock := m.renderMockup(d.mockupWidth)

	var body string
	if d.columns {
		body = lipgloss.JoinHorizontal(lipgloss.Top, content, strings.Repeat(" ", SpaceSM), mock)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, content, placeBlock(mock, slideCols, d.contentWidth))
	}
	return placeBlock(body, max((m.width-lipgloss.Width(body))/2, 0), m.width)
}

func (m Model) View() string {
	d := m.dims()
	sections := []string{m.renderHeader(m.width), m.renderBody(d)}
	if c := m.renderConsole(d.consoleWidth); c != "" {
		sections = append(sections, placeBlock(c, max((m.width-d.consoleWidth)/2, 0), m.width))
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return " " + m.theme.Status.Render(m.status)
	}
	return " " + m.help.View(m.keys)
}

// Snapshot renders the settled frame for step id at the given width, as if
// the user had walked there one step at a time. The frame is as tall as it
// needs to be, so the console shows the whole log.
func Snapshot(id, width int, opts ...Option) (string, error) {
	if _, err := catalog.Lookup(id); err != nil {
		return "", err
	}
	m := NewModel(append(opts, WithSkipAnimations())...)
	for next := 2; next <= id; next++ {
		nm, _ := m.navigate(next, "replay")
		m = nm.(Model)
	}
	m.width = width
	m.height = 0
	m.resize()
	m.loadConsole()
	return m.View(), nil
}
