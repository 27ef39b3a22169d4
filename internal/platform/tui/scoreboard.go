package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-quest/internal/history"
)

// History table layout constants
const (
	historyDateLayout = "02/01/2006 15:04"
	tableMinHeight    = 5
	tableChrome       = 12 // Title, border, help bar and margins
)

// HistoryTable renders the ranked history as a scrollable table.
type HistoryTable struct {
	table   table.Model
	records []history.Record
	width   int
	height  int
}

// NewHistoryTable creates an empty history table.
func NewHistoryTable(width, height int) HistoryTable {
	h := HistoryTable{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with appropriate columns.
func (h *HistoryTable) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Level", Width: 8},
		{Title: "Score", Width: 6},
		{Title: "Date", Width: 16},
	}

	// Give spare width to the player column
	if spare := h.width - 4 - 63; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-tableChrome, tableMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Resize rebuilds the table for a new terminal size.
func (h *HistoryTable) Resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
}

// SetRecords replaces the rows.
func (h *HistoryTable) SetRecords(records []history.Record) {
	h.records = records
	h.table.SetRows(historyRows(records))
	h.table.GotoTop()
}

// Update passes scroll keys to the table.
func (h *HistoryTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return cmd
}

// View renders the table or the empty message.
func (h HistoryTable) View() string {
	if len(h.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games played yet.\nFinish a game to get on the board!")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return tableStyle.Render(h.table.View())
}

// historyRows formats records as table rows in ranked order.
func historyRows(records []history.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.PlayerName,
			r.Level.Title(),
			fmt.Sprintf("%d", r.Score),
			r.Date.Local().Format(historyDateLayout),
		}
	}
	return rows
}
