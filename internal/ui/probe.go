package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/cwarden/timeline/internal/config"
	"github.com/cwarden/timeline/internal/geometry"
	"go.uber.org/zap"
)

// headerRows is the number of rows above the preview.
const headerRows = 1

type reloadMsg struct {
	config *config.Config
}

// ProbeModel is an interactive view that resolves mouse presses on a
// layout preview into calendar times.
type ProbeModel struct {
	config   *config.Config
	override config.Override
	reloads  <-chan *config.Config
	logger   *zap.Logger
	now      func() time.Time

	base    geometry.CalendarDate
	preview Preview

	press   *geometry.Press
	events  []geometry.PressEvent
	message string

	width  int
	height int
	top    int
}

// NewProbeModel builds the probe for cfg. reloads may be nil; when set, each
// config received replaces the current one. override is applied to configs
// the probe reloads itself.
func NewProbeModel(cfg *config.Config, override config.Override, reloads <-chan *config.Config, logger *zap.Logger) *ProbeModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &ProbeModel{
		override: override,
		reloads:  reloads,
		logger:   logger,
		now:      time.Now,
	}
	m.apply(cfg)
	return m
}

func (m *ProbeModel) apply(cfg *config.Config) {
	m.config = cfg

	base, err := cfg.BaseDate(m.now())
	if err != nil {
		m.logger.Warn("falling back to today", zap.String("date", cfg.Date), zap.Error(err))
		base = geometry.DateOf(m.now())
	}
	m.base = base

	m.preview = Preview{
		Layout: cfg.Layout,
		Blocks: cfg.Layout.Unavailable(cfg.Unavailable),
		Styles: NewStyles(cfg.Colors),
	}
	m.clampScroll()
}

// Events returns the press-out payloads fired so far.
func (m *ProbeModel) Events() []geometry.PressEvent {
	return m.events
}

func (m *ProbeModel) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *ProbeModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg{config: cfg}
	}
}

func (m *ProbeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case reloadMsg:
		m.apply(msg.config)
		m.message = "Config reloaded"
		return m, m.waitForReload()
	}

	return m, nil
}

func (m *ProbeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.config.KeyBindings[msg.String()] {
	case "quit":
		return m, tea.Quit

	case "toggle_format":
		m.config.Layout.Format24h = !m.config.Layout.Format24h
		m.preview.Layout = m.config.Layout
		if m.config.Layout.Format24h {
			m.message = "24-hour labels"
		} else {
			m.message = "12-hour labels"
		}
		return m, nil

	case "reload":
		if m.config.Path == "" {
			m.message = "No config file to reload"
			return m, nil
		}
		cfg, err := config.Reload(m.config.Path, m.override)
		if err != nil {
			m.logger.Warn("reload failed", zap.Error(err))
			m.message = "Reload failed: " + err.Error()
			return m, nil
		}
		m.apply(cfg)
		m.message = "Config reloaded"
		return m, nil

	case "clear":
		m.press = nil
		m.preview.Marker = nil
		m.message = ""
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.top++
	case "k", "up":
		m.top--
	case "g", "home":
		m.top = 0
	case "G", "end":
		m.top = m.preview.Rows()
	}
	m.clampScroll()
	return m, nil
}

func (m *ProbeModel) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		row := msg.Y - headerRows + m.top
		if row < 0 || row >= m.preview.Rows() || msg.Y < headerRows || msg.Y >= headerRows+m.visibleRows() {
			return
		}
		x, y := m.preview.PixelAt(msg.X, row, m.width)
		press := m.config.Layout.Press(x, y, m.base)
		m.press = &press
		m.preview.Marker = m.press
		m.message = "Long press " + press.Label
		m.logger.Debug("press", zap.Float64("x", x), zap.Float64("y", y), zap.String("label", press.Label))

	case msg.Action == tea.MouseActionRelease:
		if m.press == nil {
			return
		}
		if event, ok := m.press.Release(); ok {
			m.events = append(m.events, event)
			m.message = "Released " + event.Label
			m.logger.Debug("release", zap.String("label", event.Label))
		}
	}
}

func (m *ProbeModel) visibleRows() int {
	rows := m.height - headerRows - 1 // status bar
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *ProbeModel) clampScroll() {
	maxTop := m.preview.Rows() - m.visibleRows()
	if m.top > maxTop {
		m.top = maxTop
	}
	if m.top < 0 {
		m.top = 0
	}
}

func (m *ProbeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.config.Layout
	header := m.preview.Styles.Header.Render(fmt.Sprintf("%s  %s-%s  %d column(s)",
		m.base,
		geometry.HourLabel(layout.Start, layout.Format24h),
		geometry.HourLabel(layout.End, layout.Format24h),
		layout.Columns))

	body := m.preview.Render(m.top, m.top+m.visibleRows(), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusBar())
}

func (m *ProbeModel) renderStatusBar() string {
	left := " click: press  f: 12/24h  r: reload  esc: clear  q: quit"
	if m.message != "" {
		left = " " + m.message
	}

	width := m.width - lipgloss.Width(left)
	if width < 0 {
		width = 0
	}

	return m.preview.Styles.Help.Render(left + strings.Repeat(" ", width))
}
