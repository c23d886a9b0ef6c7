package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fittrack/internal/datekey"
	"github.com/sadopc/fittrack/internal/store"
	"github.com/sadopc/fittrack/internal/tracker"
)

// App is the root Bubble Tea model. Every mutation goes through the shared
// session synchronously inside Update.
type App struct {
	session *tracker.Session
	store   *store.Store
	width   int
	height  int

	activeView viewState
	showHelp   bool

	dashboard dashboardModel
	diet      dietModel
	exercise  exerciseModel
	sleep     sleepModel
	settings  settingsModel

	help        help.Model
	status      string
	statusIsErr bool
}

func NewApp(sess *tracker.Session, s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	return App{
		session:    sess,
		store:      s,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(sess),
		diet:       newDietModel(sess),
		exercise:   newExerciseModel(sess),
		sleep:      newSleepModel(sess),
		settings:   newSettingsModel(s, sess),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	if err := a.session.LastPersistError(); err != nil {
		return statusCmd(fmt.Sprintf("Not saved: %v", err), true)
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.diet.setSize(a.width, contentHeight)
		a.exercise.setSize(a.width, contentHeight)
		a.sleep.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.PrevDay):
			return a, a.shiftDay(-1)
		case key.Matches(msg, keys.NextDay):
			return a, a.shiftDay(1)
		case key.Matches(msg, keys.Today):
			return a, dayChanged(a.session.SelectDate(time.Now()))
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewDiet
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewExercise
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSleep
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			if a.activeView == viewSettings {
				return a, a.settings.refresh()
			}
			return a, nil
		}

	case statusMsg:
		a.status = msg.text
		a.statusIsErr = msg.isError
		return a, nil

	case dayChangedMsg:
		a.diet.cursor = 0
		a.exercise.cursor = 0
		a.status = "Viewing " + msg.key
		a.statusIsErr = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) shiftDay(days int) tea.Cmd {
	if err := a.session.ShiftDay(days); err != nil {
		return statusCmd(err.Error(), true)
	}
	return dayChanged(a.session.Key())
}

func dayChanged(key string) tea.Cmd {
	return func() tea.Msg { return dayChangedMsg{key: key} }
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewDiet:
		a.diet, cmd = a.diet.update(msg)
	case viewExercise:
		a.exercise, cmd = a.exercise.update(msg)
	case viewSleep:
		a.sleep, cmd = a.sleep.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDiet:
		return a.diet.formActive
	case viewExercise:
		return a.exercise.formActive
	case viewSleep:
		return a.sleep.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewDiet:
		content = a.diet.view()
	case viewExercise:
		content = a.exercise.view()
	case viewSleep:
		content = a.sleep.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(1, a.height-headerHeight-footerHeight)

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("fittrack")
	day := dateStyle.Render(a.dayLabel())
	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(day)-lipgloss.Width(tabRow)-4)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, day, spacer, tabRow),
	)
}

func (a App) dayLabel() string {
	key := a.session.Key()
	t, err := datekey.Parse(key)
	if err != nil {
		return key
	}
	return t.Format("Mon, Jan 2 2006")
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusIsErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	gap := max(1, a.width-lipgloss.Width(left)-lipgloss.Width(status)-2)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}
