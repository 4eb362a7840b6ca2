package viz

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/emojidrop/internal/config"
	"github.com/san-kum/emojidrop/internal/metrics"
	"github.com/san-kum/emojidrop/internal/physics"
	"github.com/san-kum/emojidrop/internal/world"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 300
	logEvery        = 600
)

type TickMsg time.Time

// Model drives a world from bubbletea messages and renders it.
type Model struct {
	world         *world.World
	cfg           *config.Config
	scene         *scene
	width, height int
	paused        bool
	showStats     bool
	paramKeys     []string
	selected      int
	stats         *metrics.Set
	awake         *metrics.History
	energy        *metrics.History
	contacts      *metrics.History
	lastKey       string
	lastKeyAt     time.Time
	now           func() time.Time
}

// NewModel wraps w. The world is resized to the terminal on the first
// window size message.
func NewModel(w *world.World, cfg *config.Config) Model {
	stats := metrics.Default()
	awake := metrics.AwakeHistory(historyCapacity)
	energy := metrics.EnergyHistory(historyCapacity)
	contacts := metrics.NewHistory(historyCapacity, func(f world.Frame) float64 { return float64(f.Contacts) })
	w.AddObserver(stats)
	w.AddObserver(awake)
	w.AddObserver(energy)
	w.AddObserver(contacts)

	m := Model{
		world:     w,
		cfg:       cfg,
		paramKeys: physics.Names(),
		stats:     stats,
		awake:     awake,
		energy:    energy,
		contacts:  contacts,
		now:       time.Now,
	}
	m.layout(width, height)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDuration(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap(msg.X, msg.Y)
		}
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		log.Printf("resize: %dx%d cells, bounds %+v", msg.Width, msg.Height, m.world.Bounds())
	case TickMsg:
		if !m.paused {
			f := m.world.Tick()
			if f.Index%logEvery == 0 {
				log.Printf("frame %d: %d particles, %d awake, %d contacts", f.Index, f.Particles, f.Awake, f.Contacts)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.clear()
	case "ctrl+p":
		m.paused = !m.paused
	case "ctrl+t":
		log.Printf("theme: %s", NextTheme().Name)
	case "ctrl+g":
		m.showStats = !m.showStats
		m.layout(m.width, m.height)
	case "tab":
		m.cycleParam()
	case "up":
		m.adjustParam(1)
	case "down":
		m.adjustParam(-1)
	default:
		// Pastes and fast typing arrive as one message carrying many runes.
		if msg.Paste || (msg.Type == tea.KeyRunes && !msg.Alt) {
			for _, r := range msg.Runes {
				m.press(string(r))
			}
			return m, nil
		}
		m.press(keyName(msg))
	}
	return m, nil
}

// keyName maps a key message to the name the glyph rules expect.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return msg.String()
}

// press spawns for key. Terminals do not flag auto-repeat, so the same
// key arriving again within the repeat window counts as a repeat.
func (m *Model) press(key string) {
	now := m.now()
	repeat := key == m.lastKey && now.Sub(m.lastKeyAt) <= m.cfg.RepeatWindow
	m.lastKey, m.lastKeyAt = key, now
	m.world.KeyPress(key, repeat)
}

func (m *Model) tap(col, row int) {
	if col < 0 || col >= m.scene.cols || row < 0 || row >= m.scene.rows {
		return
	}
	m.world.PointerDown(m.scene.point(col, row))
}

func (m *Model) clear() {
	m.world.KeyPress(world.CancelKey, false)
	m.lastKey = ""
	m.stats.Reset()
	m.awake.Reset()
	m.energy.Reset()
	m.contacts.Reset()
	log.Printf("reset")
}

// layout sizes the scene to the terminal and the world to the scene.
func (m *Model) layout(w, h int) {
	m.width, m.height = w, h
	cols := w
	if m.showStats {
		cols -= panelWidth
	}
	if cols < 10 {
		cols = 10
	}
	rows := h - 1
	if rows < 3 {
		rows = 3
	}
	m.scene = newScene(cols, rows, m.cfg.CellWidth, m.cfg.CellHeight)
	m.world.Resize(float64(cols)*m.cfg.CellWidth, float64(rows)*m.cfg.CellHeight)
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

// adjustParam nudges the selected parameter 5% in dir, or by one for
// frame counts. Values that leave the legal range are rejected.
func (m *Model) adjustParam(dir float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	params := m.world.Params()
	val := params.GetParams()[key]

	var next float64
	switch {
	case key == "sleep_frames":
		next = val + dir
	case val == 0:
		next = 0.01 * dir
	default:
		next = val * (1 + 0.05*dir*math.Copysign(1, val))
	}
	if err := params.SetParam(key, next); err != nil {
		log.Printf("tune: %v", err)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	st := themeStyles(CurrentTheme)
	vs := m.world.Snapshot(nil)
	DrawOrder(vs)
	view := m.scene.render(vs, m.world.Bounds(), m.world.Interacted(), st) + "\n" + m.statusLine(st)
	if !m.showStats {
		return view
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, view, m.statsView(st))
}

func (m Model) statusLine(st styles) string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	f := m.world.LastFrame()
	line := fmt.Sprintf(" %s  %d bodies  %d awake  esc clear  ctrl+g stats  ctrl+c quit", state, f.Particles, f.Awake)
	return st.status.Render(truncate(line, m.scene.cols))
}

func (m Model) statsView(st styles) string {
	var s strings.Builder
	s.WriteString(GradientText("EMOJIDROP", CurrentTheme.Primary, CurrentTheme.Accent) + "  " + st.label.Render(CurrentTheme.Name) + "\n\n")

	if m.awake.Len() > 1 {
		chart := asciigraph.Plot(m.awake.Values(), asciigraph.Height(5), asciigraph.Width(panelWidth-12), asciigraph.Caption("awake"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	f := m.world.LastFrame()
	activity := 0.0
	if f.Particles > 0 {
		activity = float64(f.Awake) / float64(f.Particles)
	}
	s.WriteString(st.label.Render("frame") + st.value.Render(fmt.Sprintf("%d", f.Index)) + "\n")
	s.WriteString(st.label.Render("bodies") + st.value.Render(fmt.Sprintf("%d", f.Particles)) + "\n")
	s.WriteString(st.label.Render("awake") + ProgressBar(activity, 12) + st.value.Render(fmt.Sprintf(" %d", f.Awake)) + "\n")
	s.WriteString(st.label.Render("energy") + st.value.Render(fmt.Sprintf("%.2f", f.Kinetic)) + "\n")
	s.WriteString(st.label.Render("contacts") + SparklineChart(m.contacts.Values(), 16) + "\n")
	s.WriteString(st.label.Render("settled") + st.value.Render(settled(m.stats.Values()["settle_frame"])) + "\n")

	s.WriteString("\n" + st.header.Render("PARAMETERS") + "\n")
	values := m.world.Params().GetParams()
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-18s %8.3f", k, values[k])
		if i == m.selected {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString(st.status.Render("  "+line) + "\n")
		}
	}
	s.WriteString(st.help.Render("\ntab select  ↑↓ tune\nctrl+p pause  ctrl+t theme"))
	return st.panel.Height(m.height).Render(s.String())
}

func settled(frame float64) string {
	if frame == 0 {
		return "-"
	}
	return fmt.Sprintf("frame %.0f", frame)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

// Run starts the full-screen program and blocks until it quits.
func Run(w *world.World, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(w, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
