package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/game"
	"github.com/vovakirdan/color-quest/internal/navigator"
)

const (
	namePlaceholder = "Your name"
	nameHint        = "Enter your name!"
	tileWidth       = 12
	tileHeight      = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	hintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	successBoxStyle = boxStyle.BorderForeground(lipgloss.Color("42"))
	errorBoxStyle   = boxStyle.BorderForeground(lipgloss.Color("196"))
)

// title renders the game banner with each letter in a palette color.
func title() string {
	const text = "COLOR QUEST"
	colors := core.AllColors()

	var b strings.Builder
	i := 0
	for _, r := range text {
		if r == ' ' {
			b.WriteString("  ")
			continue
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors[i%len(colors)].Hex()))
		b.WriteString(style.Render(string(r)))
		b.WriteRune(' ')
		i++
	}
	return b.String()
}

func (m Model) renderDescription() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title(), m.width))
	b.WriteString("\n\n")

	text := strings.Join([]string{
		"Learn your colors!",
		"",
		"Type your name and choose a level.",
		"A color name appears at the top of the screen:",
		"find the tile of that color among the nine.",
		"Every right answer scores one point.",
		"",
		"Your best games are kept in the history.",
	}, "\n")
	b.WriteString(centerBlock(boxStyle.Render(text), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHome(snap navigator.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title(), m.width))
	b.WriteString("\n\n")

	prompt := "What is your name?"
	if snap.NameRejected {
		prompt = hintStyle.Render(nameHint)
	}
	b.WriteString(centerText(prompt, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(boxStyle.Padding(0, 1).Render(m.name.View()), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLevelSelect(snap navigator.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("Hello %s!", snap.PlayerName)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a level", m.width))
	b.WriteString("\n\n")

	for i, level := range core.AllLevels() {
		line := "  " + level.Title() + "  "
		if i == m.levelCursor {
			line = selectedStyle.Render(level.Title())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGame(snap navigator.Snapshot) string {
	var b strings.Builder

	status := fmt.Sprintf("%s  |  Level: %s  |  Score: %d",
		snap.PlayerName, levelTabs(snap.Level), snap.Score)
	b.WriteString(centerText(subtleStyle.Render(status), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Find the color", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(snap.Target.Name()), m.width))
	b.WriteString("\n\n")

	switch snap.Popup {
	case navigator.PopupSuccess:
		msg := titleStyle.Render("Bravo!") + "\n\n" + "That was " + snap.Target.Name() + "."
		b.WriteString(centerBlock(successBoxStyle.Render(msg), m.width))
	case navigator.PopupError:
		picked := core.ColorNone
		if snap.LastPick >= 0 {
			picked = snap.Tiles[snap.LastPick]
		}
		msg := hintStyle.Render("Oops!") + "\n\n" +
			fmt.Sprintf("That was %s.\nLook for %s.", picked.Name(), snap.Target.Name())
		b.WriteString(centerBlock(errorBoxStyle.Render(msg), m.width))
	default:
		b.WriteString(centerBlock(renderGrid(snap.Tiles, m.tileCursor), m.width))
	}
	b.WriteString("\n")
	return b.String()
}

// levelTabs shows every level with the current one highlighted.
func levelTabs(current core.Level) string {
	parts := make([]string, 0, len(core.AllLevels()))
	for _, level := range core.AllLevels() {
		if level == current {
			parts = append(parts, "["+level.Title()+"]")
			continue
		}
		parts = append(parts, level.Title())
	}
	return strings.Join(parts, " ")
}

// renderGrid draws the tiles as colored swatches, 3 per row.
func renderGrid(tiles [game.GridSize]core.Color, cursor int) string {
	rows := make([]string, 0, game.GridRows)
	for r := 0; r < game.GridRows; r++ {
		cells := make([]string, 0, game.GridCols)
		for c := 0; c < game.GridCols; c++ {
			i := r*game.GridCols + c
			cells = append(cells, renderTile(tiles[i], i, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTile(c core.Color, index int, selected bool) string {
	border := lipgloss.HiddenBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color("#FFFFFF")).
		Border(border).
		BorderForeground(lipgloss.Color("229")).
		Render(fmt.Sprintf("%d", index+1))
}

func (m Model) renderHistory(snap navigator.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.history.View(), m.width))
	b.WriteString("\n")

	if snap.ConfirmClear {
		b.WriteString("\n")
		b.WriteString(centerText(hintStyle.Render("Clear the whole history? (y/n)"), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers a multi-line block within given width.
func centerBlock(block string, width int) string {
	if lipgloss.Width(block) >= width {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
