package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const maxNameLen = 24

// namePrompt asks for a name when a score makes the leaderboard.
type namePrompt struct {
	input textinput.Model
	score int
	rank  int
	err   string
}

func newNamePrompt(defaultName string, score, rank int) *namePrompt {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.SetValue(defaultName)
	ti.Focus()

	return &namePrompt{
		input: ti,
		score: score,
		rank:  rank,
	}
}

// update forwards a message to the text field.
func (p *namePrompt) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *namePrompt) value() string {
	return p.input.Value()
}

// view renders the dialog centered in a width x height area.
func (p *namePrompt) view(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	lines := []string{
		titleStyle.Render("NEW HIGH SCORE"),
		fmt.Sprintf("%s points - place #%d", humanize.Comma(int64(p.score)), p.rank),
		"",
		p.input.View(),
	}
	if p.err != "" {
		lines = append(lines, errStyle.Render(p.err))
	}
	lines = append(lines, "", hintStyle.Render("Enter: save  Esc: skip"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("57")).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
