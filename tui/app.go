package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nish-b/found-call-explorer/analysis"
	"github.com/nish-b/found-call-explorer/model"
	"github.com/nish-b/found-call-explorer/report"
)

// Loader fetches and parses the call export.
type Loader interface {
	Load(ctx context.Context, source string) ([]model.CallRecord, error)
}

// Options configures a Model.
type Options struct {
	Title   string
	Source  string
	Timeout time.Duration // zero means no timeout
	Logger  *zap.Logger
}

// DefaultTitle is shown when Options.Title is empty.
const DefaultTitle = "Found Call Analysis Explorer"

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
)

// entry is one selectable disposition row of the overview.
type entry struct {
	category    string
	disposition string
	count       int
}

type Model struct {
	loader Loader
	opts   Options
	logger *zap.Logger

	phase   phase
	err     error
	spinner spinner.Model

	records  []model.CallRecord // working set
	summary  model.Summary
	ranked   []model.RankedCategory
	filtered []entry

	cursor int
	offset int // scroll offset in overview lines
	width  int
	height int

	mode        mode
	searchInput textinput.Model

	screen         screen
	detailNotes    []string
	detailKeywords []model.Keyword
	detailLines    []string
	detailOffset   int

	quitting bool
}

func NewModel(loader Loader, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	si := textinput.New()
	si.Placeholder = "filter dispositions..."
	si.CharLimit = 100

	return Model{
		loader:      loader,
		opts:        opts,
		logger:      opts.Logger,
		phase:       phaseLoading,
		spinner:     sp,
		searchInput: si,
		screen:      overviewScreen(),
		width:       100,
		height:      30,
	}
}

// recordsLoadedMsg is sent when the export has been fetched and parsed.
type recordsLoadedMsg struct {
	records []model.CallRecord
}

// loadFailedMsg carries a fetch or parse failure.
type loadFailedMsg struct {
	err error
}

func loadRecords(l Loader, source string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		records, err := l.Load(ctx, source)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg{records: records}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadRecords(m.loader, m.opts.Source, m.opts.Timeout))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if _, ok := m.screen.selected(); ok {
			m.detailLines = m.renderDetailContent()
			m.detailScrollDown(0)
		}
		m.clampOffset()
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		return m.loaded(msg.records), nil

	case loadFailedMsg:
		m.phase = phaseFailed
		m.err = msg.err
		m.logger.Error("load failed", zap.String("source", m.opts.Source), zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.phase != phaseReady {
			switch msg.String() {
			case "q", "esc":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		if _, ok := m.screen.selected(); ok {
			return m.updateDetail(msg)
		}
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateOverview(msg)
	}
	return m, nil
}

func (m Model) loaded(records []model.CallRecord) Model {
	m.records = analysis.WorkingSet(records)
	m.summary = analysis.Summarize(records)
	m.ranked = analysis.Ranked(m.summary.Breakdown)
	m.phase = phaseReady
	m.applyFilter()

	m.logger.Info("records classified",
		zap.Int("records", len(records)),
		zap.Int("working_set", m.summary.Rows),
		zap.Int("categories", len(m.ranked)),
		zap.Int("unmapped_dispositions", len(m.summary.Unmapped)),
	)
	return m
}

func (m *Model) applyFilter() {
	m.filtered = nil
	search := strings.ToLower(m.searchInput.Value())

	for _, c := range m.ranked {
		for _, d := range c.Dispositions {
			if search != "" {
				haystack := strings.ToLower(c.Name + " " + d.Disposition)
				if !strings.Contains(haystack, search) {
					continue
				}
			}
			m.filtered = append(m.filtered, entry{category: c.Name, disposition: d.Disposition, count: d.Count})
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m Model) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)

	case "pgup":
		m.cursor = max(0, m.cursor-m.visibleRows())

	case "pgdown":
		m.cursor = max(0, min(len(m.filtered)-1, m.cursor+m.visibleRows()))

	case "enter":
		return m.enterDetail()

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch
		return m, nil

	case "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
		}
	}

	m.clampOffset()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseLoading:
		return m.viewLoading()
	case phaseFailed:
		return m.viewFailed()
	}
	if _, ok := m.screen.selected(); ok {
		return m.viewDetail()
	}
	return m.viewOverview()
}

func (m Model) viewLoading() string {
	msg := m.spinner.View() + " Loading call data..."
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) viewFailed() string {
	width := min(m.width-4, 100)
	body := alertLabelStyle.Render("Error: ") + m.err.Error()
	panel := alertStyle.Width(max(width, 20)).Render(body)
	return panel + "\n" + helpStyle.Render("  q: quit")
}

func (m Model) viewOverview() string {
	var b strings.Builder

	// title bar
	title := titleStyle.Render(m.opts.Title)
	info := fmt.Sprintf("  %s calls  %d categories", report.FormatCount(m.summary.Rows), len(m.ranked))
	if n := len(m.summary.Unmapped); n > 0 {
		info += fmt.Sprintf("  %d uncategorized dispositions", n)
	}
	b.WriteString(title + dimStyle.Render(info) + "\n\n")
	b.WriteString(sectionStyle.Render(" Disposition Breakdown by Category") + "\n")

	lines, _, _ := m.overviewLines()
	if len(lines) == 0 {
		lines = []string{dimStyle.Render("  No categorized calls.")}
	}

	visible := m.visibleRows()
	end := min(m.offset+visible, len(lines))
	for i := m.offset; i < end; i++ {
		b.WriteString(lines[i] + "\n")
	}
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}

	// bottom bar
	if m.mode == modeSearch {
		b.WriteString(statusBarStyle.Render("Filter: ") + m.searchInput.View())
	} else {
		b.WriteString(m.renderHelp())
	}
	return b.String()
}

// overviewLines renders category headers and disposition rows for the
// filtered entries. It also returns the line indexes of the cursor row and
// of the header above it.
func (m Model) overviewLines() (lines []string, cursorLine, headerLine int) {
	total := m.summary.Rows

	current := ""
	for i, e := range m.filtered {
		if e.category != current {
			current = e.category
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, m.renderCategory(current, total))
		}
		if i == m.cursor {
			cursorLine = len(lines)
			headerLine = cursorLine
			for j := i; j > 0 && m.filtered[j-1].category == e.category; j-- {
				headerLine--
			}
			headerLine--
		}
		lines = append(lines, m.renderEntry(e, total, i == m.cursor))
	}
	return lines, cursorLine, max(headerLine, 0)
}

func (m Model) renderCategory(name string, total int) string {
	catTotal := 0
	for _, c := range m.ranked {
		if c.Name == name {
			catTotal = c.Total
			break
		}
	}
	right := fmt.Sprintf("%s calls (%s)", report.FormatCount(catTotal), report.FormatShare(catTotal, total))
	inner := m.width - 2
	return categoryStyle.Render(pad(name, max(inner-len(right), len(name)+1)) + right)
}

func (m Model) renderEntry(e entry, total int, selected bool) string {
	right := fmt.Sprintf("%s (%s)", report.FormatCount(e.count), report.FormatShare(e.count, total))
	nameWidth := max(m.width-len(right)-6, 10)
	name := pad(e.disposition, nameWidth)

	if selected {
		row := selectedStyle.Render("  " + name + " " + right)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, row)
	}
	return normalStyle.Render("  " + dispositionStyle.Render(name) + " " + dimStyle.Render(right))
}

func (m Model) renderHelp() string {
	help := "  Enter: notes  /: filter  j/k: move  q: quit"
	if v := m.searchInput.Value(); v != "" {
		help += fmt.Sprintf("  Esc: clear filter %q", v)
	}
	return helpStyle.Render(help)
}

func (m Model) visibleRows() int {
	// title, blank line, subheading, bottom bar
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	lines, cursorLine, headerLine := m.overviewLines()
	visible := m.visibleRows()

	// keep the category header in view while it fits
	top := cursorLine
	if cursorLine-headerLine < visible {
		top = headerLine
	}
	if top < m.offset {
		m.offset = top
	}
	if cursorLine >= m.offset+visible {
		m.offset = cursorLine - visible + 1
	}
	if maxOffset := len(lines) - visible; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Err returns the load failure, if the session ended in one.
func (m Model) Err() error {
	return m.err
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width < 3 {
			return string(runes[:max(width, 0)])
		}
		return string(runes[:width-2]) + ".."
	}
	return s + strings.Repeat(" ", width-len(runes))
}
