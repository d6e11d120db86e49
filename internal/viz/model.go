package viz

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/countdown/internal/anim"
	"github.com/san-kum/countdown/internal/countdown"
	"github.com/san-kum/countdown/internal/storage"
)

const (
	dialCols = 24
	dialRows = 12
	barWidth = 24
)

// TickMsg is one step of the countdown tick chain. Epoch is the timer
// epoch the chain was armed with.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

// FrameMsg requests a redraw of the animation.
type FrameMsg time.Time

// Recorder persists finished or abandoned sessions.
type Recorder interface {
	Save(sess storage.Session) (string, error)
}

type Options struct {
	Interval   time.Duration
	FrameEvery time.Duration
	Oscillator anim.Oscillator
	Theme      Theme
	Recorder   Recorder
	Logger     *slog.Logger
	Now        func() time.Time
}

// Model is the timer display. It is mounted when the program calls Init
// and unmounted by Unmount; after unmount no tick or frame is honored.
type Model struct {
	timer  countdown.Timer
	driver anim.Driver

	interval   time.Duration
	frameEvery time.Duration
	theme      Theme
	styles     styles
	recorder   Recorder
	log        *slog.Logger
	now        func() time.Time

	frameAt       time.Time
	framing       bool
	mounted       bool
	started       time.Time
	width, height int
	showHelp      bool
}

// NewModel builds a mounted timer display around timer.
func NewModel(timer countdown.Timer, opts Options) (Model, error) {
	if opts.Interval <= 0 {
		opts.Interval = countdown.DefaultInterval
	}
	if opts.FrameEvery <= 0 {
		opts.FrameEvery = time.Second / 30
	}
	if opts.Oscillator.Period <= 0 {
		osc, err := anim.NewOscillator(anim.DefaultPeriod, anim.FastOutSlowIn)
		if err != nil {
			return Model{}, err
		}
		opts.Oscillator = osc
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeClassic
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	text, ring, err := themeTweens(opts.Theme)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		timer:      timer,
		driver:     anim.NewDriver(opts.Oscillator, text, ring),
		interval:   opts.Interval,
		frameEvery: opts.FrameEvery,
		theme:      opts.Theme,
		styles:     newStyles(opts.Theme),
		recorder:   opts.Recorder,
		log:        opts.Logger,
		now:        opts.Now,
		mounted:    true,
	}

	now := m.now()
	m.frameAt = now
	m.driver.Sync(m.timer.Active(), now)
	m.framing = m.driver.State() == anim.DriverOscillating

	m.log.Info("timer mounted",
		"seconds", timer.Initial(),
		"interval", m.interval,
		"period", opts.Oscillator.Period,
		"theme", m.theme.Name,
	)
	return m, nil
}

func themeTweens(t Theme) (anim.ColorTween, anim.ColorTween, error) {
	text, err := anim.NewColorTween(string(t.Text), string(t.TextPulse))
	if err != nil {
		return anim.ColorTween{}, anim.ColorTween{}, fmt.Errorf("theme %s: %w", t.Name, err)
	}
	ring, err := anim.NewColorTween(string(t.Ring), string(t.RingPulse))
	if err != nil {
		return anim.ColorTween{}, anim.ColorTween{}, fmt.Errorf("theme %s: %w", t.Name, err)
	}
	return text, ring, nil
}

func (m Model) Init() tea.Cmd {
	if m.framing {
		return m.frame()
	}
	return nil
}

func (m Model) tick(epoch uint64) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.frameEvery, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Update handles input, ticks and animation frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Unmount()
			return m, tea.Quit
		case " ", "enter":
			cmd := m.toggle()
			return m, cmd
		case "r":
			cmd := m.reset()
			return m, cmd
		case "t":
			m.cycleTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onButton(msg.Y) {
			cmd := m.toggle()
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		cmd := m.onTick(msg)
		return m, cmd
	case FrameMsg:
		if !m.mounted {
			return m, nil
		}
		m.frameAt = time.Time(msg)
		if m.driver.State() == anim.DriverOscillating {
			return m, m.frame()
		}
		m.framing = false
	}
	return m, nil
}

func (m *Model) toggle() tea.Cmd {
	if !m.mounted {
		return nil
	}
	now := m.now()
	// a stop that resets the count ends the session like a reset does
	discard := m.timer.Phase() == countdown.PhaseRunning && m.timer.ResetOnStop()
	if discard && m.timer.Ticks() > 0 {
		m.record(false)
	}
	if m.started.IsZero() || m.timer.Phase() == countdown.PhaseFinished {
		m.started = now
	}

	armed := m.timer.Toggle()
	if discard {
		m.started = time.Time{}
	}
	m.log.Info("timer toggled",
		"phase", m.timer.Phase(),
		"remaining", m.timer.Remaining(),
		"epoch", m.timer.Epoch(),
	)

	var tick tea.Cmd
	if armed {
		tick = m.tick(m.timer.Epoch())
	}
	return tea.Batch(tick, m.syncAnimation(now))
}

func (m *Model) reset() tea.Cmd {
	if !m.mounted {
		return nil
	}
	if m.timer.Ticks() > 0 && m.timer.Phase() != countdown.PhaseFinished {
		m.record(false)
	}
	m.timer.Reset()
	m.started = time.Time{}
	m.log.Info("timer reset", "remaining", m.timer.Remaining(), "epoch", m.timer.Epoch())
	return m.syncAnimation(m.now())
}

func (m *Model) onTick(msg TickMsg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	before := m.timer.Remaining()
	next := m.timer.Tick(msg.Epoch)
	if m.timer.Remaining() == before {
		m.log.Debug("stale tick dropped", "epoch", msg.Epoch, "current", m.timer.Epoch())
		return nil
	}

	var cmd tea.Cmd
	if next {
		cmd = m.tick(m.timer.Epoch())
	}
	if m.timer.Phase() == countdown.PhaseFinished {
		m.log.Info("timer finished", "ticks", m.timer.Ticks())
		m.record(true)
		m.started = time.Time{}
	}
	return tea.Batch(cmd, m.syncAnimation(msg.Time))
}

// syncAnimation restarts or stops the driver when the count crosses zero,
// and arms the frame chain if none is live.
func (m *Model) syncAnimation(now time.Time) tea.Cmd {
	if m.driver.Sync(m.timer.Active(), now) {
		m.log.Debug("animation transition", "state", m.driver.State(), "restarts", m.driver.Restarts())
	}
	m.frameAt = now
	if m.driver.State() == anim.DriverOscillating && !m.framing {
		m.framing = true
		return m.frame()
	}
	return nil
}

func (m *Model) cycleTheme() {
	next := NextTheme(m.theme.Name)
	text, ring, err := themeTweens(next)
	if err != nil {
		m.log.Warn("theme rejected", "theme", next.Name, "err", err)
		return
	}
	m.theme = next
	m.styles = newStyles(next)
	m.driver.SetColors(text, ring)
}

func (m *Model) record(completed bool) {
	if m.recorder == nil || m.started.IsZero() {
		return
	}
	sess := storage.Session{
		Started:     m.started,
		Ended:       m.now(),
		Initial:     m.timer.Initial(),
		Remaining:   m.timer.Remaining(),
		Ticks:       m.timer.Ticks(),
		Completed:   completed,
		ResetOnStop: m.timer.ResetOnStop(),
	}
	id, err := m.recorder.Save(sess)
	if err != nil {
		m.log.Error("failed to record session", "err", err)
		return
	}
	m.log.Info("session recorded", "id", id, "completed", completed)
}

// Unmount tears the component down: pending ticks are invalidated, the
// animation stops and an unfinished session is recorded. It is idempotent.
func (m *Model) Unmount() {
	if !m.mounted {
		return
	}
	if m.timer.Ticks() > 0 && m.timer.Phase() != countdown.PhaseFinished {
		m.record(false)
	}
	m.timer.Cancel()
	m.driver.Stop()
	m.framing = false
	m.mounted = false
	m.log.Info("timer unmounted", "remaining", m.timer.Remaining())
}

func (m Model) Remaining() int { return m.timer.Remaining() }
func (m Model) Running() bool { return m.timer.Running() }
func (m Model) Phase() countdown.Phase { return m.timer.Phase() }
func (m Model) Mounted() bool { return m.mounted }
func (m Model) Theme() Theme { return m.theme }
func (m Model) Animation() anim.DriverState { return m.driver.State() }

// Sample is the animation frame the next View renders.
func (m Model) Sample() anim.Sample { return m.driver.Sample(m.frameAt) }

func (m Model) glyph() string {
	switch m.timer.Phase() {
	case countdown.PhaseRunning:
		if m.timer.ResetOnStop() {
			return glyphRefresh
		}
		return glyphPause
	case countdown.PhaseFinished:
		return glyphRefresh
	default:
		return glyphPlay
	}
}

// dial draws the indicator and overlays the number on its middle row.
func (m Model) dial(sample anim.Sample) string {
	c := NewCanvas(dialCols, dialRows)
	cx, cy := float64(dialCols), float64(dialRows*2)
	maxR := math.Min(cx, cy) - 0.5
	c.FillCircle(cx, cy, maxR*sample.Fraction)

	ring := lipgloss.NewStyle().Foreground(lipgloss.Color(sample.Indicator.Hex()))
	text := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(sample.Text.Hex()))

	label := []rune(fmt.Sprintf(" %d ", m.timer.Remaining()))
	mid := dialRows / 2
	rows := c.Rows()
	for i, row := range rows {
		if i != mid || len(label) > dialCols {
			rows[i] = ring.Render(row)
			continue
		}
		cells := []rune(row)
		start := (dialCols - len(label)) / 2
		rows[i] = ring.Render(string(cells[:start])) +
			text.Render(string(label)) +
			ring.Render(string(cells[start+len(label):]))
	}
	return strings.Join(rows, "\n")
}

func (m Model) status() string {
	var label string
	switch m.timer.Phase() {
	case countdown.PhaseRunning:
		label = m.styles.running.Render("RUNNING")
	case countdown.PhaseFinished:
		label = m.styles.finished.Render("FINISHED")
	default:
		label = m.styles.status.Render("STOPPED")
	}
	return label + "  " + m.styles.progressBar(m.timer.Fraction(), barWidth)
}

// layout renders the content block and reports the first row and height
// of the toggle button within it.
func (m Model) layout() (string, int, int) {
	title := m.styles.title.Render("Countdown timer")
	dial := m.dial(m.Sample())
	button := m.styles.button.Render(m.glyph())
	status := m.status()
	hint := m.styles.hint.Render("space start/stop · r reset · t theme · ? help · q quit")

	parts := []string{title, dial, "", button, "", status, hint}
	if m.showHelp {
		parts = append(parts, m.styles.help.Render(helpText))
	}

	buttonTop := lipgloss.Height(title) + lipgloss.Height(dial) + 1
	return lipgloss.JoinVertical(lipgloss.Center, parts...), buttonTop, lipgloss.Height(button)
}

// onButton maps a screen row to the toggle button, accounting for the
// vertical centering done by View.
func (m Model) onButton(y int) bool {
	content, top, height := m.layout()
	offset := 0
	if m.height > 0 {
		if gap := m.height - lipgloss.Height(content); gap > 0 {
			offset = gap - int(math.Round(float64(gap)*0.5))
		}
	}
	row := y - offset
	return row >= top && row < top+height
}

// View renders the TUI interface.
func (m Model) View() string {
	content, _, _ := m.layout()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

const helpText = `space / enter   start or stop the countdown
click button    same as space
r               reset to the initial value
t               cycle color theme
?               toggle this help
q / esc         quit`
