package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/nkoval/centum/internal/domain"
)

type dashboardTab int

const (
	tabToday dashboardTab = iota
	tabCalendar
	tabWhy
)

var tabTitles = []string{"Today", "Calendar", "Why"}

type dashboardKeyMap struct {
	NextTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Quit    key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log value")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel is the interactive dashboard: a tabbed view over the
// challenge state with inline habit entry.
type dashboardModel struct {
	app   *App
	state *domain.ChallengeState

	tab     dashboardTab
	cursor  int
	input   textinput.Model
	editing bool
	keys    dashboardKeyMap

	// toast is the transient feedback line; cleared on the next key.
	toast string

	width int
}

func runDashboard(app *App) error {
	m, err := newDashboardModel(app)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newDashboardModel(app *App) (*dashboardModel, error) {
	state, err := app.Challenge.Status(context.Background())
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.CharLimit = 12
	input.Width = 12

	return &dashboardModel{
		app:   app,
		state: state,
		input: input,
		keys:  newDashboardKeyMap(),
	}, nil
}

func (m *dashboardModel) Init() tea.Cmd {
	return nil
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		m.toast = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
		case key.Matches(msg, m.keys.Up):
			if m.tab == tabToday && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.tab == tabToday && m.cursor < len(domain.AllHabits)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Enter):
			switch m.tab {
			case tabToday:
				m.startHabitEdit()
			case tabWhy:
				m.startWhyEdit()
			}
		}
	}
	return m, nil
}

func (m *dashboardModel) startHabitEdit() {
	rec := m.state.Day(m.state.CurrentDay)
	if rec != nil && rec.Completed {
		m.toast = "Day already completed. Nothing left to log."
		return
	}
	kind := domain.AllHabits[m.cursor]
	rule := domain.Rules[kind]
	m.input.SetValue("")
	m.input.Placeholder = formatter.FormatRuleTarget(rule)
	m.input.Focus()
	m.editing = true
}

func (m *dashboardModel) startWhyEdit() {
	m.input.SetValue(m.state.Motivation)
	m.input.Placeholder = "why I started"
	m.input.Focus()
	m.editing = true
}

func (m *dashboardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.input.Blur()
		m.submit(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the edited value to the service and reloads state.
func (m *dashboardModel) submit(value string) {
	ctx := context.Background()

	if m.tab == tabWhy {
		if err := m.app.Challenge.SetMotivation(ctx, value); err != nil {
			m.toast = "Error: " + err.Error()
			return
		}
		m.toast = "Motivation saved."
	} else {
		out, err := m.app.Challenge.RecordHabit(ctx, domain.AllHabits[m.cursor], value)
		if err != nil {
			m.toast = "Error: " + err.Error()
			return
		}
		m.toast = out.Message
		if out.DayCompleted {
			m.toast = fmt.Sprintf("Day %d complete! 🔥 Streak: %d", out.Day, out.Streak)
		}
	}

	state, err := m.app.Challenge.Status(ctx)
	if err != nil {
		m.toast = "Error: " + err.Error()
		return
	}
	m.state = state
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabToday:
		b.WriteString(m.renderToday())
	case tabCalendar:
		b.WriteString(formatter.FormatCalendar(m.state))
	case tabWhy:
		b.WriteString(m.renderWhy())
	}

	if m.toast != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.toast) + "\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if dashboardTab(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render("[" + title + "]")
		} else {
			parts[i] = formatter.Dim(" " + title + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m *dashboardModel) renderToday() string {
	var b strings.Builder

	b.WriteString(formatter.Bold(fmt.Sprintf("Day %d of %d", m.state.CurrentDay, domain.ChallengeDays)))
	b.WriteString("   " + formatter.StreakLine(m.state.Streak) + "\n\n")

	rec := m.state.Day(m.state.CurrentDay)
	for i, kind := range domain.AllHabits {
		rule := domain.Rules[kind]

		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}

		value := formatter.Dim("--")
		done := false
		if rec != nil {
			if v, ok := rec.Measurement(kind); ok {
				value = formatter.FormatValue(v) + " " + rule.Unit
				done = rec.CompletedHabits[kind]
			}
		}

		line := fmt.Sprintf("%s%s %-8s %s", marker, formatter.CheckMark(done), rule.Label, value)
		if m.editing && m.tab == tabToday && i == m.cursor {
			line = fmt.Sprintf("%s%s %-8s %s", marker, formatter.CheckMark(done), rule.Label, m.input.View())
		}
		b.WriteString(line + "\n")
	}

	score := 0
	if rec != nil {
		score = rec.Score
	}
	b.WriteString("\n" + fmt.Sprintf("Score: %s", formatter.ScoreStyle(score).Render(fmt.Sprintf("%d/100", score))) + "\n")

	return b.String()
}

func (m *dashboardModel) renderWhy() string {
	if m.editing && m.tab == tabWhy {
		return "Why I started:\n\n" + m.input.View() + "\n"
	}
	return formatter.FormatMotivation(m.state.Motivation)
}

func (m *dashboardModel) renderHelp() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.NextTab, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
