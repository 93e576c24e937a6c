package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nish-b/found-call-explorer/analysis"
)

func (m Model) enterDetail() (Model, tea.Cmd) {
	if len(m.filtered) == 0 {
		return m, nil
	}
	disposition := m.filtered[m.cursor].disposition

	m.screen = detailScreen(disposition)
	m.detailNotes = analysis.NotesFor(m.records, disposition)
	m.detailKeywords = analysis.KeywordFrequency(m.detailNotes)
	m.detailLines = m.renderDetailContent()
	m.detailOffset = 0

	m.logger.Debug("disposition selected",
		zap.String("disposition", disposition),
		zap.Int("notes", len(m.detailNotes)),
		zap.Int("keywords", len(m.detailKeywords)),
	)
	return m, nil
}

func (m Model) leaveDetail() Model {
	m.screen = overviewScreen()
	m.detailNotes = nil
	m.detailKeywords = nil
	m.detailLines = nil
	m.detailOffset = 0
	return m
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace", "left", "h":
		return m.leaveDetail(), nil

	case "up", "k":
		m.detailScrollUp(1)
	case "down", "j":
		m.detailScrollDown(1)
	case "pgup", "u":
		m.detailScrollUp(m.detailVisibleRows())
	case "pgdown", "d", " ":
		m.detailScrollDown(m.detailVisibleRows())
	case "home", "g":
		m.detailOffset = 0
	case "end", "G":
		m.detailScrollToBottom()
	}

	return m, nil
}

func (m Model) viewDetail() string {
	var b strings.Builder
	disposition, _ := m.screen.selected()

	// title bar
	title := detailTitleStyle.Render("← " + disposition)
	b.WriteString(title + "\n")

	visible := m.detailVisibleRows()
	end := min(m.detailOffset+visible, len(m.detailLines))
	for i := m.detailOffset; i < end; i++ {
		b.WriteString(m.detailLines[i])
		b.WriteString("\n")
	}

	// pad remaining rows
	for i := end - m.detailOffset; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.detailHelpBar())
	return b.String()
}

func (m Model) detailHelpBar() string {
	scroll := ""
	if len(m.detailLines) > m.detailVisibleRows() {
		pct := m.detailOffset * 100 / (len(m.detailLines) - m.detailVisibleRows())
		scroll = dimStyle.Render(fmt.Sprintf("  %d%%", pct))
	}
	return helpStyle.Render("  Esc: back to categories  j/k: scroll  q: back") + scroll
}

func (m Model) detailVisibleRows() int {
	// title bar + bottom bar = 2 lines
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) detailScrollUp(n int) {
	m.detailOffset -= n
	if m.detailOffset < 0 {
		m.detailOffset = 0
	}
}

func (m *Model) detailScrollDown(n int) {
	m.detailOffset += n
	maxOffset := len(m.detailLines) - m.detailVisibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.detailOffset > maxOffset {
		m.detailOffset = maxOffset
	}
}

func (m *Model) detailScrollToBottom() {
	maxOffset := len(m.detailLines) - m.detailVisibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.detailOffset = maxOffset
}

// renderDetailContent renders keywords and notes into lines for scrolling.
func (m Model) renderDetailContent() []string {
	maxWidth := m.width - 2 // small margin
	if maxWidth < 40 {
		maxWidth = 40
	}

	lines := []string{"", sectionStyle.Render(" Common Keywords")}
	if len(m.detailKeywords) == 0 {
		lines = append(lines, dimStyle.Render(" No keywords."))
	} else {
		lines = append(lines, m.keywordRows(maxWidth)...)
	}

	lines = append(lines, "", sectionStyle.Render(fmt.Sprintf(" Call Notes (%d)", len(m.detailNotes))))
	if len(m.detailNotes) == 0 {
		return append(lines, dimStyle.Render(" No notes available for this disposition."))
	}

	bar := noteBarStyle.Render("│")
	for _, note := range m.detailNotes {
		lines = append(lines, "")
		for _, wl := range wrapText(note, maxWidth-3) {
			lines = append(lines, " "+bar+" "+wl)
		}
	}
	return lines
}

// keywordRows lays keyword chips out in rows no wider than maxWidth.
func (m Model) keywordRows(maxWidth int) []string {
	var rows []string
	row := " "
	for _, kw := range m.detailKeywords {
		chip := keywordStyle.Render(fmt.Sprintf("%s (%d)", kw.Word, kw.Count))
		if lipgloss.Width(row) > 1 && lipgloss.Width(row)+lipgloss.Width(chip)+1 > maxWidth {
			rows = append(rows, row)
			row = " "
		}
		if lipgloss.Width(row) > 1 {
			row += " "
		}
		row += chip
	}
	return append(rows, row)
}

// wrapText splits text into lines that fit within maxWidth.
func wrapText(text string, maxWidth int) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			result = append(result, "")
			continue
		}
		runes := []rune(line)
		for len(runes) > maxWidth {
			cut := maxWidth
			// prefer breaking at the last space
			for i := maxWidth; i > maxWidth/2; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			result = append(result, string(runes[:cut]))
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		}
		result = append(result, string(runes))
	}
	return result
}
