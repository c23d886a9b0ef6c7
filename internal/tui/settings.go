package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/store"
	"github.com/sadopc/fittrack/internal/tracker"
)

type settingsModel struct {
	store   *store.Store
	session *tracker.Session
	width   int
	height  int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	goalCalories *string
	goalWater    *string
	goalSteps    *string
	goalSleep    *string
	goalWorkouts *string
	bedTime      *string
	wakeTime     *string
}

func newSettingsModel(s *store.Store, sess *tracker.Session) settingsModel {
	gc, gw, gs, gsl, gwo, bt, wt := "", "", "", "", "", "", ""
	return settingsModel{
		store:        s,
		session:      sess,
		goalCalories: &gc,
		goalWater:    &gw,
		goalSteps:    &gs,
		goalSleep:    &gsl,
		goalWorkouts: &gwo,
		bedTime:      &bt,
		wakeTime:     &wt,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	g := s.session.Goals()
	bed, wake := s.store.SleepSchedule()
	*s.goalCalories = strconv.Itoa(g.Calories)
	*s.goalWater = strconv.Itoa(g.Water)
	*s.goalSteps = strconv.Itoa(g.Steps)
	*s.goalSleep = formatHours(g.Sleep)
	*s.goalWorkouts = strconv.Itoa(g.Workouts)
	*s.bedTime = bed.String()
	*s.wakeTime = wake.String()

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Calories (kcal)").Value(s.goalCalories).Validate(validatePositiveInt),
			huh.NewInput().Title("Water (glasses)").Value(s.goalWater).Validate(validatePositiveInt),
			huh.NewInput().Title("Steps").Value(s.goalSteps).Validate(validatePositiveInt),
			huh.NewInput().Title("Sleep (hours)").Value(s.goalSleep).Validate(validatePositiveFloat),
			huh.NewInput().Title("Workouts").Value(s.goalWorkouts).Validate(validatePositiveInt),
		).Title("Daily Goals"),
		huh.NewGroup(
			huh.NewInput().Title("Default bedtime (HH:MM)").Value(s.bedTime).Validate(validateTimeOfDay),
			huh.NewInput().Title("Default wake time (HH:MM)").Value(s.wakeTime).Validate(validateTimeOfDay),
		).Title("Sleep Schedule"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		if err := s.saveSettings(); err != nil {
			return s, tea.Batch(statusCmd(err.Error(), true), s.refresh())
		}
		return s, tea.Batch(statusCmd("Settings saved; goals apply to new days", false), s.refresh())
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	g, err := s.formGoals()
	if err != nil {
		return err
	}
	if err := s.store.SaveGoals(g); err != nil {
		return err
	}
	if err := s.session.SetGoals(g); err != nil {
		return err
	}

	bed, err := stats.ParseTimeOfDay(strings.TrimSpace(*s.bedTime))
	if err != nil {
		return fmt.Errorf("bedtime: %w", err)
	}
	wake, err := stats.ParseTimeOfDay(strings.TrimSpace(*s.wakeTime))
	if err != nil {
		return fmt.Errorf("wake time: %w", err)
	}
	if err := s.store.SaveSleepSchedule(bed, wake); err != nil {
		return err
	}
	s.session.SetSleepTimes(bed, wake)
	return nil
}

func (s settingsModel) formGoals() (stats.Goals, error) {
	var g stats.Goals
	var err error
	ints := []struct {
		dst *int
		src string
	}{
		{&g.Calories, *s.goalCalories},
		{&g.Water, *s.goalWater},
		{&g.Steps, *s.goalSteps},
		{&g.Workouts, *s.goalWorkouts},
	}
	for _, f := range ints {
		if *f.dst, err = parseCount(f.src); err != nil {
			return g, err
		}
	}
	if g.Sleep, err = strconv.ParseFloat(strings.TrimSpace(*s.goalSleep), 64); err != nil {
		return g, fmt.Errorf("sleep goal: %w", err)
	}
	if !g.Valid() {
		return g, fmt.Errorf("every goal must be positive")
	}
	return g, nil
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit goals and sleep schedule")

	g := s.session.Goals()
	var rows []string
	rows = append(rows, title, "", subtitleStyle.Render("Goals for new days"))
	for _, p := range []struct{ label, value string }{
		{"Calories", fmt.Sprintf("%d kcal", g.Calories)},
		{"Water", fmt.Sprintf("%d glasses", g.Water)},
		{"Steps", fmt.Sprintf("%d", g.Steps)},
		{"Sleep", formatHours(g.Sleep) + " hours"},
		{"Workouts", fmt.Sprintf("%d", g.Workouts)},
	} {
		label := lipgloss.NewStyle().Width(24).Render(p.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(p.value)))
	}

	rows = append(rows, "", subtitleStyle.Render("Stored settings"))
	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(setting.Value)))
	}

	rows = append(rows, "", hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
