package main

import (
	"fmt"
	"strings"

	"github.com/tonlabs/react-navigation-surf/internal/surf"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// activitySampleMsg carries one synthetic activity reading from the feeder
// goroutine into the TUI.
type activitySampleMsg float64

const maxActivitySamples = 120

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	menuDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

func demoScreens(cfg cliConfig) []surf.ScreenSpec {
	return []surf.ScreenSpec{
		{
			Name:    surf.MainScreenName,
			Options: surf.ScreenOptions{Title: "Surf"},
			Build: func(surf.Route) surf.Scene {
				return newMenuScene()
			},
		},
		{
			Name:    "activity",
			Options: surf.ScreenOptions{Title: "Activity", HeaderShown: cfg.HeaderShown},
			Build: func(surf.Route) surf.Scene {
				return newActivityScene()
			},
		},
		{
			Name:    "notes",
			Options: surf.ScreenOptions{Title: "Notes", HeaderShown: cfg.HeaderShown},
			Build: func(surf.Route) surf.Scene {
				return newNotesScene()
			},
		},
		{
			Name:    "docs",
			Options: surf.ScreenOptions{Title: "Docs", HeaderShown: cfg.HeaderShown},
			Build: func(surf.Route) surf.Scene {
				return newDocsScene()
			},
		},
	}
}

// menuScene is the master screen: a cursor-driven list of the detail screens.
type menuScene struct {
	entries []menuEntry
	cursor  int
	keys    menuKeyMap
}

type menuEntry struct {
	name string
	desc string
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

func newMenuScene() *menuScene {
	return &menuScene{
		entries: []menuEntry{
			{"activity", "live activity sparkline"},
			{"notes", "scratch pad with a text input"},
			{"docs", "scrollable help text"},
		},
		keys: menuKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open"),
			),
		},
	}
}

func (m *menuScene) Init() tea.Cmd { return nil }

func (m *menuScene) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		return surf.Navigate(m.entries[m.cursor].name, nil)
	}
	return nil
}

func (m *menuScene) View(width, height int) string {
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("Surf"))
	b.WriteString("\n")
	for i, e := range m.entries {
		cursor := "  "
		line := fmt.Sprintf("%s  %s", e.name, menuDescStyle.Render(e.desc))
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			line = menuCursorStyle.Render(e.name) + "  " + menuDescStyle.Render(e.desc)
		}
		b.WriteString(cursor + line + "\n")
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

// activityScene charts the feeder's samples. It accumulates samples even
// while hidden so the chart is current the moment it becomes visible again.
type activityScene struct {
	samples []float64
}

func newActivityScene() *activityScene {
	return &activityScene{}
}

func (a *activityScene) Init() tea.Cmd { return nil }

func (a *activityScene) Update(msg tea.Msg) tea.Cmd {
	if sample, ok := msg.(activitySampleMsg); ok {
		a.samples = append(a.samples, float64(sample))
		if len(a.samples) > maxActivitySamples {
			a.samples = a.samples[len(a.samples)-maxActivitySamples:]
		}
	}
	return nil
}

func (a *activityScene) View(width, height int) string {
	if len(a.samples) == 0 {
		return "waiting for samples..."
	}

	chartHeight := height - 2
	if chartHeight < 1 {
		chartHeight = 1
	}
	// Rebuilt every frame so the chart tracks pane resizes.
	sl := sparkline.New(width, chartHeight)
	for _, v := range a.samples {
		sl.Push(v)
	}
	sl.Draw()

	last := a.samples[len(a.samples)-1]
	stats := statLineStyle.Render(
		fmt.Sprintf("last %.1f  samples %d", last, len(a.samples)))
	return lipgloss.JoinVertical(lipgloss.Left, sl.View(), stats)
}

// notesScene is a scratch pad. Its input state persists across focus changes,
// which makes the mount-once lifecycle visible in the demo.
type notesScene struct {
	input textinput.Model
	saved []string
}

func newNotesScene() *notesScene {
	ti := textinput.New()
	ti.Placeholder = "type a note, enter to keep it"
	ti.CharLimit = 120
	ti.Focus()
	return &notesScene{input: ti}
}

func (n *notesScene) Init() tea.Cmd { return textinput.Blink }

func (n *notesScene) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if v := strings.TrimSpace(n.input.Value()); v != "" {
			n.saved = append(n.saved, v)
			n.input.Reset()
		}
		return nil
	}
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd
}

func (n *notesScene) View(width, height int) string {
	var b strings.Builder
	b.WriteString(n.input.View())
	b.WriteString("\n\n")
	for _, s := range n.saved {
		b.WriteString("· " + s + "\n")
	}
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(b.String())
}

// docsScene shows scrollable help text in a viewport.
type docsScene struct {
	vp viewport.Model
}

func newDocsScene() *docsScene {
	vp := viewport.New(0, 0)
	vp.SetContent(docsText)
	return &docsScene{vp: vp}
}

func (d *docsScene) Init() tea.Cmd { return nil }

func (d *docsScene) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return cmd
}

func (d *docsScene) View(width, height int) string {
	d.vp.Width = width
	d.vp.Height = height
	return d.vp.View()
}

const docsText = `Surf demo

This program adapts its layout to the terminal width. Wide terminals get a
two-pane split: the menu stays on the left while the selected screen fills
the right pane. Narrow terminals get a single-pane stack: opening a screen
pushes it over the menu, and esc pops back.

Resize the terminal across the threshold to watch the two presentations
exchange places without losing any screen state: the activity chart keeps
collecting samples and the notes pad keeps its text either way.

Keys

  up/k, down/j   move the menu cursor
  enter          open the selected screen
  esc            back (pop, or refocus the menu in split mode)
  ctrl+c         quit

Configuration

  Settings load from ~/.config/surf/config.yml and SURF_* environment
  variables. Run with -write-config to emit a starter file.
`
