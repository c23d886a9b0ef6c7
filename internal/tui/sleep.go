package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/tracker"
)

const maxSleepQuality = 10

type sleepModel struct {
	session *tracker.Session
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formBed  *string
	formWake *string
}

func newSleepModel(s *tracker.Session) sleepModel {
	b, w := "", ""
	return sleepModel{session: s, formBed: &b, formWake: &w}
}

func (s *sleepModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s sleepModel) update(msg tea.Msg) (sleepModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			return s.showForm()
		case key.Matches(msg, keys.Update):
			rec := s.session.UpdateSleepHours()
			return s, mutationStatus(s.session, fmt.Sprintf("Sleep: %s hours", formatHours(rec.Sleep.Hours)))
		case key.Matches(msg, keys.Plus):
			return s, s.adjustQuality(1)
		case key.Matches(msg, keys.Minus):
			return s, s.adjustQuality(-1)
		}
	}
	return s, nil
}

// adjustQuality steps the rating, keeping it within 0-10.
func (s sleepModel) adjustQuality(delta int) tea.Cmd {
	current := s.session.Active().Sleep.Quality
	q := min(maxSleepQuality, max(0, current+delta))
	if q == current {
		return nil
	}
	rec := s.session.UpdateSleepQuality(q)
	return mutationStatus(s.session, fmt.Sprintf("Sleep quality: %d/10", rec.Sleep.Quality))
}

func (s sleepModel) showForm() (sleepModel, tea.Cmd) {
	sl := s.session.Sleep()
	*s.formBed = sl.Bed.String()
	*s.formWake = sl.Wake.String()

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Bedtime (HH:MM)").Value(s.formBed).Validate(validateTimeOfDay),
			huh.NewInput().Title("Wake time (HH:MM)").Value(s.formWake).Validate(validateTimeOfDay),
		).Title("Sleep Times"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s sleepModel) updateForm(msg tea.Msg) (sleepModel, tea.Cmd) {
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
		bed, err1 := stats.ParseTimeOfDay(strings.TrimSpace(*s.formBed))
		wake, err2 := stats.ParseTimeOfDay(strings.TrimSpace(*s.formWake))
		if err1 != nil || err2 != nil {
			return s, statusCmd("Invalid sleep times", true)
		}
		s.session.SetSleepTimes(bed, wake)
		return s, statusCmd(fmt.Sprintf("Sleep times %s to %s (press u to log)", bed, wake), false)
	}
	return s, cmd
}

func (s sleepModel) view() string {
	w := s.width - 4
	if s.formActive && s.form != nil {
		return activePanelStyle.Width(w).Render(s.form.View())
	}

	rec := s.session.Active()
	sl := s.session.Sleep()

	qualityStyle := successStyle
	switch {
	case rec.Sleep.Quality < 4:
		qualityStyle = errorStyle
	case rec.Sleep.Quality < 7:
		qualityStyle = warningStyle
	}

	rows := []string{
		titleStyle.Render("Sleep"),
		"",
		fmt.Sprintf("  Logged    %s / %s hours",
			highlightStyle.Render(formatHours(rec.Sleep.Hours)), formatHours(rec.Sleep.Goal)),
		fmt.Sprintf("  Quality   %s  %s",
			highlightStyle.Render(fmt.Sprintf("%d/10", rec.Sleep.Quality)),
			qualityStyle.Render(stats.SleepQualityLabel(rec.Sleep.Quality))),
		"",
		fmt.Sprintf("  Bedtime   %s", sl.Bed),
		fmt.Sprintf("  Wake time %s", sl.Wake),
		fmt.Sprintf("  Duration  %s hours", formatHours(sl.Hours())),
		"",
		mutedStyle.Render("  e: edit times  u: log hours  +/-: quality"),
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
