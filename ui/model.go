// Package ui is the cardlot debug visualizer: a terminal rendering of the
// card grid the engine would produce for a container of the terminal's
// (scaled) size. It exists to exercise the full pipeline, with resize
// events flowing through a DimensionSource into the coordinator exactly
// as a browser container's would.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cardlot/config"
	"cardlot/inspect"
	"cardlot/layout"
	"cardlot/resize"
)

// Terminal cells are not pixels; the visualizer scales the cell grid up
// to a plausible pixel container so tier breakpoints behave naturally
// (80 cols ≈ 800px ≈ tablet, 110+ cols ≈ desktop).
const (
	pxPerCol = 10
	pxPerRow = 22
)

// refreshInterval is how often the view re-reads the coordinator. The
// debounced recomputation is asynchronous to the Bubble Tea loop.
const refreshInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model for the visualizer.
type Model struct {
	coord  *resize.Coordinator
	source *resize.ManualSource

	width  int
	height int

	result        layout.LayoutResult
	haveResult    bool
	forceFallback bool

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
}

// NewModel builds the visualizer model around a fresh engine and
// coordinator configured from cfg.
func NewModel(cfg *config.Config) *Model {
	engine := layout.NewEngine()
	source := resize.NewManualSource(0, 0)
	coord := resize.NewCoordinator(engine, source, cfg.DemoCardCount,
		resize.WithDebounce(time.Duration(cfg.DebounceMS)*time.Millisecond),
		resize.WithHistorySize(cfg.HistorySize),
		resize.WithMetricsWindow(cfg.MetricsWindow),
	)

	return &Model{
		coord:  coord,
		source: source,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Run starts the visualizer program.
func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	defer m.coord.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Coordinator exposes the underlying coordinator for tests and the
// snapshot key.
func (m *Model) Coordinator() *resize.Coordinator {
	return m.coord
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.source.Set(float64(msg.Width*pxPerCol), float64(msg.Height*pxPerRow))
		return m, tick()

	case tickMsg:
		if res, ok := m.coord.Layout(); ok {
			m.result = res
			m.haveResult = true
		}
		if m.forceFallback && m.haveResult {
			m.result = m.emergencyView()
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.AddCard):
			m.coord.SetCardCount(m.coord.CardCount() + 1)
		case key.Matches(msg, m.keys.RemoveCard):
			m.coord.SetCardCount(m.coord.CardCount() - 1)
		case key.Matches(msg, m.keys.ForceFallback):
			m.forceFallback = !m.forceFallback
			if m.forceFallback {
				m.result = m.emergencyView()
			} else if res, ok := m.coord.Layout(); ok {
				m.result = res
			}
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		case key.Matches(msg, m.keys.Snapshot):
			m.status = m.dumpSnapshot()
		}
	}

	return m, nil
}

// emergencyView runs the emergency solver on the current container so
// the fallback rendering can be inspected without shrinking the terminal.
func (m *Model) emergencyView() layout.LayoutResult {
	w := float64(m.width * pxPerCol)
	h := float64(m.height * pxPerRow)
	tier := layout.ClassifyDevice(w)
	avail := layout.CalculateAvailableSpace(w, h, layout.SpacingFor(tier))

	res := layout.SolveEmergencyLayout(m.coord.CardCount(), avail, nil)
	res.Tier = tier
	res.TierName = tier.String()
	return res
}

// dumpSnapshot writes the debug snapshot next to the working directory
// and returns a status line.
func (m *Model) dumpSnapshot() string {
	snap := inspect.Capture(m.coord)
	data, err := snap.JSON()
	if err != nil {
		return fmt.Sprintf("snapshot failed: %v", err)
	}
	name := fmt.Sprintf("cardlot-snapshot-%d.json", time.Now().Unix())
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Sprintf("snapshot failed: %v", err)
	}
	return "wrote " + name
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "measuring..."
	}
	if !m.haveResult {
		return "computing layout..."
	}

	statusBar := m.statusBar()
	helpView := m.help.View(m.keys)

	contentHeight := m.height - lipgloss.Height(statusBar) - lipgloss.Height(helpView)
	grid := m.renderGrid(contentHeight)

	return lipgloss.JoinVertical(lipgloss.Left, grid, statusBar, helpView)
}

// renderGrid draws the solved grid as bordered boxes scaled from pixel
// space back to cells, row-centered the way the engine placed them.
func (m *Model) renderGrid(contentHeight int) string {
	info := m.result.LayoutInfo
	count := len(m.result.Positions)

	cardW := int(m.result.ActualCardSize.Width / pxPerCol)
	cardH := int(m.result.ActualCardSize.Height / pxPerRow)
	if cardW < 5 {
		cardW = 5
	}
	if cardH < 3 {
		cardH = 3
	}

	rows := make([]string, 0, info.Rows)
	for row := 0; row < info.Rows; row++ {
		lo := row * info.CardsPerRow
		if lo >= count {
			break
		}
		hi := lo + info.CardsPerRow
		if hi > count {
			hi = count
		}

		boxes := make([]string, 0, hi-lo)
		for i := lo; i < hi; i++ {
			boxes = append(boxes, m.renderCard(i, cardW, cardH))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, grid)
}

func (m *Model) renderCard(i, w, h int) string {
	pos := m.result.Positions[i]
	label := runewidth.Truncate(fmt.Sprintf("#%d", i+1), w, "…")

	style := cardStyle
	if pos.IsFallback {
		style = fallbackCardStyle
	}
	return style.Width(w).Height(h).Render(label)
}

func (m *Model) statusBar() string {
	info := m.result.LayoutInfo
	metrics := m.coord.Metrics()

	parts := []string{
		titleStyle.Render("cardlot"),
		fmt.Sprintf("%s %dx%d px", m.result.TierName, m.width*pxPerCol, m.height*pxPerRow),
		fmt.Sprintf("grid %dx%d", info.Rows, info.CardsPerRow),
		fmt.Sprintf("card %.0fx%.0f", m.result.ActualCardSize.Width, m.result.ActualCardSize.Height),
		fmt.Sprintf("cards %d", len(m.result.Positions)),
		fmt.Sprintf("runs %d (hit %d)", metrics.TotalRuns, metrics.CacheHits),
	}
	if m.result.IsFallback() {
		parts = append(parts, fallbackBadgeStyle.Render("FALLBACK"))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	return statusStyle.Render(strings.Join(parts, "  ·  "))
}
