package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/user/cultivation-life/internal/interfaces"
	"github.com/user/cultivation-life/internal/textcmd"
	"github.com/user/cultivation-life/internal/types"
)

type screen int

const (
	screenWelcome screen = iota
	screenPlaying
	screenResult
	screenGameOver
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(0, 1)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	endingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Italic(true)
)

type keyMap struct {
	Choose   key.Binding
	Continue key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Continue, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	game      interfaces.Game
	keys      keyMap
	help      help.Model
	wrapWidth int
}

func newModel(game interfaces.Game, wrapWidth int) model {
	if wrapWidth <= 0 {
		wrapWidth = 72
	}
	return model{
		game:      game,
		keys:      newKeyMap(),
		help:      help.New(),
		wrapWidth: wrapWidth,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) screen() screen {
	snap := m.game.Snapshot()
	switch {
	case snap.IsGameOver:
		return screenGameOver
	case !snap.Started():
		return screenWelcome
	case snap.ShowResultScreen:
		return screenResult
	default:
		return screenPlaying
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Width > 4 && msg.Width-4 < m.wrapWidth {
			m.wrapWidth = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		switch m.screen() {
		case screenWelcome:
			if key.Matches(msg, m.keys.Continue) {
				m.game.Begin()
			}
		case screenPlaying:
			if key.Matches(msg, m.keys.Choose) {
				n, _ := strconv.Atoi(msg.String())
				m.game.Choose(n - 1)
			}
		case screenResult:
			if key.Matches(msg, m.keys.Continue) {
				m.game.Advance()
			}
		case screenGameOver:
			if key.Matches(msg, m.keys.Restart, m.keys.Continue) {
				m.game.Reset()
			}
		}
	}

	return m, nil
}

func (m model) View() string {
	snap := m.game.Snapshot()

	var b strings.Builder
	switch m.screen() {
	case screenWelcome:
		b.WriteString(titleStyle.Render("CULTIVATION LIFE"))
		b.WriteString("\n\n")
		b.WriteString(m.wrap("A mortal life, a sect, a thousand years of slacking off."))
		b.WriteString("\n\nPress enter to begin your path.")

	case screenPlaying:
		b.WriteString(m.playerPanel(snap))
		b.WriteString("\n\n")
		event := snap.CurrentEvent
		b.WriteString(titleStyle.Render(event.Title))
		b.WriteString("\n\n")
		b.WriteString(m.wrap(event.Description))
		b.WriteString("\n\n")
		for i, choice := range event.Choices {
			b.WriteString(choiceStyle.Render(m.wrap(fmt.Sprintf("%d. %s", i+1, choice.Text))))
			b.WriteString("\n")
		}

	case screenResult:
		result := snap.PendingResult
		b.WriteString(titleStyle.Render("You chose: " + result.ChoiceText))
		b.WriteString("\n\n")
		if result.ResultText != "" {
			b.WriteString(m.wrap(result.ResultText))
			b.WriteString("\n\n")
		}
		b.WriteString(renderEffects(result.Effects))
		b.WriteString("\n\nPress enter to continue.")

	case screenGameOver:
		b.WriteString(titleStyle.Render("GAME OVER"))
		b.WriteString("\n\n")
		b.WriteString(endingStyle.Render(m.wrap(snap.GameResult)))
		b.WriteString("\n\n")
		b.WriteString(m.playerPanel(snap))
		b.WriteString("\n\nPress r to be reborn.")
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) wrap(text string) string {
	return wordwrap.String(text, m.wrapWidth)
}

func (m model) playerPanel(snap types.Snapshot) string {
	p := snap.Player
	lines := []string{
		fmt.Sprintf("%s | %s | %s", p.Name, p.Realm, snap.StageName),
		fmt.Sprintf("Age %d / Lifespan %d", p.Age, p.Lifespan),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			textcmd.AttributeLabel("cultivation"), p.Cultivation,
			textcmd.AttributeLabel("spiritualPower"), p.SpiritualPower,
			textcmd.AttributeLabel("health"), p.Health),
	}
	if p.Sect != "" {
		lines = append(lines, "Sect: "+p.Sect)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderEffects(effects types.Effects) string {
	lines := make([]string, 0, len(effects))
	for _, k := range slices.Sorted(maps.Keys(effects)) {
		line := fmt.Sprintf("● %s: %+d", textcmd.AttributeLabel(k), effects[k])
		if effects[k] >= 0 {
			lines = append(lines, gainStyle.Render(line))
		} else {
			lines = append(lines, lossStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
