// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type simulates the host's menu pages and shows the unmade
// checklist on top of them. The checklist is a scrollable view with a
// draggable scrollbar on the right edge.
package display

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/engine"
	"github.com/hammamikhairi/cooktrack/internal/i18n"
	"github.com/hammamikhairi/cooktrack/internal/logger"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Titles: warm brown, like the in-game checklist.
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6a468")).
			Bold(true)

	// Primary text: light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text: dimmed zinc for hints.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	metStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86efac")).
			Bold(true)

	unmetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))
)

const (
	closeLabel = "[x]"
	minHandle  = 2

	headerRows = 1
	footerRows = 1

	pageListRows = 8
)

// ── UI ───────────────────────────────────────────────────────────

// Option configures the UI.
type Option func(*UI)

// WithKeys sets the open and menu (close) keys.
func WithKeys(openKey, menuKey string) Option {
	return func(u *UI) {
		u.openKey, u.menuKey = openKey, menuKey
	}
}

// WithWheelStep sets how many rows one wheel notch scrolls.
func WithWheelStep(n int) Option {
	return func(u *UI) {
		if n > 0 {
			u.wheelStep = n
		}
	}
}

// WithStartPage sets the host page shown at startup.
func WithStartPage(p domain.HostPage) Option {
	return func(u *UI) {
		u.page = p
	}
}

// UI runs the checklist through Bubble Tea. Call [NewUI] then [UI.Run]
// (blocking).
type UI struct {
	checklist *engine.Checklist
	tr        *i18n.Translator
	log       *logger.Logger

	openKey   string
	menuKey   string
	wheelStep int
	page      domain.HostPage
}

// NewUI creates the display. Call Run() to start.
func NewUI(checklist *engine.Checklist, tr *i18n.Translator, log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		checklist: checklist,
		tr:        tr,
		log:       log,
		openKey:   "r",
		menuKey:   "e",
		wheelStep: 1,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	p := tea.NewProgram(u.newModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (u *UI) newModel() model {
	keys := newKeyMap(u.openKey, u.menuKey)
	keys.setOpen(false, false)
	keys.setBrowse(u.page != domain.PageNone)
	return model{
		checklist: u.checklist,
		tr:        u.tr,
		log:       u.log,
		keys:      keys,
		help:      help.New(),
		scroll:    NewScrollbar(minHandle),
		wheelStep: u.wheelStep,
		page:      u.page,
		width:     80,
		height:    24,
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	checklist *engine.Checklist
	tr        *i18n.Translator
	log       *logger.Logger
	keys      keyMap
	help      help.Model

	page      domain.HostPage
	hover     int
	lines     []line
	scroll    Scrollbar
	wheelStep int
	status    string

	dragging   bool
	dragOffset int

	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("cooktrack")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Page):
		m.page = m.page.Next()
		m.hover = 0
		m.status = ""
		m.keys.setBrowse(m.page != domain.PageNone)
	case key.Matches(msg, m.keys.Close):
		m.close()
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Up):
		if !m.checklist.IsOpen() {
			m.moveHover(-1)
			break
		}
		m.scroll.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		if !m.checklist.IsOpen() {
			m.moveHover(1)
			break
		}
		m.scroll.ScrollBy(1)
	case key.Matches(msg, m.keys.PgUp):
		m.scroll.ScrollBy(-m.visibleRows())
	case key.Matches(msg, m.keys.PgDown):
		m.scroll.ScrollBy(m.visibleRows())
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	if !m.checklist.IsOpen() {
		return m
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll.ScrollBy(-m.wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll.ScrollBy(m.wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == 0 && msg.X >= m.width-len(closeLabel) {
			m.close()
			return m
		}
		row := msg.Y - headerRows
		if msg.X == m.width-1 && row >= 0 && row < m.visibleRows() && m.scroll.OnHandle(row) {
			m.dragging = true
			m.dragOffset = row - m.scroll.HandlePos()
		}

	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.scroll.DragTo(msg.Y - headerRows - m.dragOffset)

	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

func (m *model) open() {
	_, err := m.checklist.Open(m.page.Context())
	if errors.Is(err, domain.ErrAlreadyOpen) {
		return
	}
	if err != nil {
		m.log.Error("open checklist: %v", err)
		m.status = err.Error()
		return
	}
	m.show()
}

func (m *model) toggle() {
	_, err := m.checklist.Toggle()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.show()
}

func (m *model) close() {
	prev, err := m.checklist.Close()
	if err != nil {
		return
	}
	m.page = prev.Page()
	m.lines = nil
	m.dragging = false
	m.status = ""
	m.keys.setOpen(false, false)
	m.keys.setBrowse(m.page != domain.PageNone)
	m.scroll.Resize(0, 0, 0)
}

// pageRecipes lists the recipes of the current host page. The plain page
// has none.
func (m model) pageRecipes() (domain.Mode, []string) {
	ctx := m.page.Context()
	if !ctx.Fixed {
		return ctx.Mode, nil
	}
	return ctx.Mode, m.checklist.Engine().RecipeNames(ctx.Mode)
}

func (m *model) moveHover(delta int) {
	_, names := m.pageRecipes()
	if len(names) == 0 {
		m.hover = 0
		return
	}
	m.hover = max(0, min(len(names)-1, m.hover+delta))
}

// hoverLine describes how often the hovered recipe has been made.
func (m model) hoverLine(mode domain.Mode, name string) string {
	n, err := m.checklist.Engine().MadeCount(mode, name)
	if err != nil {
		m.log.Warn("made count of %q: %v", name, err)
		return ""
	}
	return m.tr.MadeCount(n)
}

// show switches to the checklist's current snapshot, scrolled to the top.
func (m *model) show() {
	m.status = ""
	m.keys.setOpen(true, m.checklist.CanToggle())
	m.scroll.ScrollTo(0)
	m.relayout()
}

// relayout rebuilds the lines for the current width and resizes the
// scrollbar.
func (m *model) relayout() {
	if snap := m.checklist.Snapshot(); snap != nil {
		m.lines = buildLines(snap, m.tr, m.contentWidth())
	}
	v := m.visibleRows()
	m.scroll.Resize(len(m.lines), v, v)
}

func (m model) contentWidth() int {
	return max(1, m.width-2)
}

func (m model) visibleRows() int {
	return max(1, m.height-headerRows-footerRows)
}

func (m model) View() string {
	if !m.checklist.IsOpen() {
		return m.viewPage()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteByte('\n')

	v := m.visibleRows()
	off := m.scroll.Offset()
	for row := 0; row < v; row++ {
		text := ""
		if i := off + row; i < len(m.lines) {
			text = renderLine(m.lines[i])
		}
		gap := max(0, m.width-1-lipgloss.Width(text))
		b.WriteString(text)
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(m.scrollbarCell(row))
		b.WriteByte('\n')
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) viewHeader() string {
	mode := m.checklist.Mode()
	left := " " + m.tr.ModeTitle(mode)
	if m.checklist.CanToggle() {
		left += labelStyle.Render("  ◀ " + mode.String() + " ▶")
	}
	if m.status != "" {
		left += "  " + secondaryStyle.Render(m.status)
	}
	gap := max(1, m.width-lipgloss.Width(left)-len(closeLabel))
	return barBg.Width(m.width).Render(left + strings.Repeat(" ", gap) + closeLabel)
}

func (m model) scrollbarCell(row int) string {
	if !m.scroll.Scrollable() {
		return " "
	}
	if m.scroll.OnHandle(row) {
		return handleStyle.Render("┃")
	}
	return trackStyle.Render("│")
}

func (m model) viewPage() string {
	var b strings.Builder
	b.WriteString(RenderBanner(m.width))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("  page: "))
	b.WriteString(primaryStyle.Render(m.page.String()))
	b.WriteByte('\n')
	m.viewRecipes(&b)
	if m.status != "" {
		b.WriteString(secondaryStyle.Render("  " + m.status))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewRecipes lists the page's recipes around the hovered one, with its
// made count underneath.
func (m model) viewRecipes(b *strings.Builder) {
	mode, names := m.pageRecipes()
	if len(names) == 0 {
		return
	}
	hover := min(m.hover, len(names)-1)
	start := max(0, min(hover-pageListRows/2, len(names)-pageListRows))
	end := min(len(names), start+pageListRows)

	b.WriteByte('\n')
	for i := start; i < end; i++ {
		if i == hover {
			b.WriteString(titleStyle.Render("  > " + names[i]))
		} else {
			b.WriteString(primaryStyle.Render("    " + names[i]))
		}
		b.WriteByte('\n')
	}
	if made := m.hoverLine(mode, names[hover]); made != "" {
		b.WriteString(secondaryStyle.Render("  " + made))
		b.WriteByte('\n')
	}
}
