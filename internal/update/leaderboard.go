package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleLeaderboardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.nameInput.Focused() {
		switch msg.String() {
		case "esc":
			m.nameInput.Blur()
			return m, nil
		case "enter":
			return m.submitNameInput()
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "i", "a", "enter":
		m.nameInput.Focus()
		return m, nil
	case "R":
		m.ResetPrompt = "leaderboard"
		return m, nil
	}
	return m, nil
}

func (m Model) submitNameInput() (Model, tea.Cmd) {
	name := m.nameInput.Value()
	m.nameInput.SetValue("")
	m.nameInput.Blur()
	if !m.Ledger.EnsureName(name, m.clock()) {
		return m.setStatus("name cannot be empty", true)
	}
	m.persistLeaderboard()
	return m.setStatus(fmt.Sprintf("focusing as %s", m.Ledger.Selected), false)
}

func (m *Model) refreshLeaderboardTable() {
	ranked := m.Ledger.Ranking()
	rows := make([]table.Row, 0, len(ranked))
	for i, entry := range ranked {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			entry.Name,
			fmt.Sprintf("%d", entry.Minutes),
		})
	}
	m.boardTable.SetRows(rows)
}
