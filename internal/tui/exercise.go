package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/tracker"
)

type exerciseForm int

const (
	exerciseFormWorkout exerciseForm = iota
	exerciseFormSteps
)

type exerciseModel struct {
	session *tracker.Session
	width   int
	height  int
	cursor  int

	formActive bool
	formKind   exerciseForm
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formName     *string
	formType     *string
	formTime     *string
	formDuration *string
	formBurned   *string
	formSteps    *string
}

func newExerciseModel(s *tracker.Session) exerciseModel {
	n, wt, tm, du, b, st := "", "", "", "", "", ""
	return exerciseModel{
		session:      s,
		formName:     &n,
		formType:     &wt,
		formTime:     &tm,
		formDuration: &du,
		formBurned:   &b,
		formSteps:    &st,
	}
}

func (e *exerciseModel) setSize(w, h int) {
	e.width = w
	e.height = h
}

func (e exerciseModel) update(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if e.formActive && e.form != nil {
		return e.updateForm(msg)
	}

	workouts := e.session.Exercise().Workouts()
	e.cursor = clampCursor(e.cursor, len(workouts))

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if e.cursor > 0 {
				e.cursor--
			}
		case key.Matches(msg, keys.Down):
			if e.cursor < len(workouts)-1 {
				e.cursor++
			}
		case key.Matches(msg, keys.New):
			return e.showWorkoutForm()
		case key.Matches(msg, keys.Steps):
			return e.showStepsForm()
		case key.Matches(msg, keys.Delete):
			if len(workouts) == 0 {
				return e, nil
			}
			w := workouts[e.cursor]
			if _, ok := e.session.RemoveWorkout(w.ID); !ok {
				return e, statusCmd("Workout not found", true)
			}
			e.cursor = clampCursor(e.cursor, len(workouts)-1)
			return e, mutationStatus(e.session, "Removed "+w.Name)
		}
	}
	return e, nil
}

func (e exerciseModel) showWorkoutForm() (exerciseModel, tea.Cmd) {
	draft := tracker.NewWorkoutDraft(time.Now())
	*e.formName = ""
	*e.formType = string(draft.Type)
	*e.formTime = draft.Time.String()
	*e.formDuration = fmt.Sprint(draft.Duration)
	*e.formBurned = ""

	var typeOpts []huh.Option[string]
	for _, t := range tracker.WorkoutTypes {
		typeOpts = append(typeOpts, huh.NewOption(titleCase(string(t)), string(t)))
	}

	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Workout").Value(e.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Type").Options(typeOpts...).Value(e.formType),
			huh.NewInput().Title("Time (HH:MM)").Value(e.formTime).Validate(validateTimeOfDay),
			huh.NewInput().Title("Duration (min)").Value(e.formDuration).Validate(validateCount),
			huh.NewInput().Title("Calories burned (kcal)").Value(e.formBurned).Validate(validateCount),
		).Title("Add Workout"),
	).WithShowHelp(true).WithShowErrors(true)

	e.formKind = exerciseFormWorkout
	e.formActive = true
	return e, e.form.Init()
}

func (e exerciseModel) showStepsForm() (exerciseModel, tea.Cmd) {
	*e.formSteps = fmt.Sprint(e.session.Active().Steps.Count)
	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Steps today").Value(e.formSteps).Validate(validateCount),
		).Title("Steps"),
	).WithShowHelp(true).WithShowErrors(true)

	e.formKind = exerciseFormSteps
	e.formActive = true
	return e, e.form.Init()
}

func (e exerciseModel) updateForm(msg tea.Msg) (exerciseModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.formActive = false
		e.form = nil
		if e.formKind == exerciseFormSteps {
			return e, e.submitSteps()
		}
		return e, e.submitWorkout()
	}
	return e, cmd
}

func (e exerciseModel) submitWorkout() tea.Cmd {
	t, err := stats.ParseTimeOfDay(strings.TrimSpace(*e.formTime))
	if err != nil {
		return statusCmd("Invalid time", true)
	}
	duration, err := parseCount(*e.formDuration)
	if err != nil {
		return statusCmd("Invalid duration", true)
	}
	burned, err := parseCount(*e.formBurned)
	if err != nil {
		return statusCmd("Invalid calories", true)
	}
	w, _, ok := e.session.AddWorkout(tracker.Workout{
		Name:           strings.TrimSpace(*e.formName),
		Type:           tracker.WorkoutType(*e.formType),
		Duration:       duration,
		CaloriesBurned: burned,
		Time:           t,
	})
	if !ok {
		return statusCmd("Workout needs a name", true)
	}
	return mutationStatus(e.session, fmt.Sprintf("Added %s (%d min)", w.Name, w.Duration))
}

func (e exerciseModel) submitSteps() tea.Cmd {
	n, err := parseCount(*e.formSteps)
	if err != nil {
		return statusCmd("Invalid step count", true)
	}
	rec := e.session.UpdateSteps(n)
	return mutationStatus(e.session, fmt.Sprintf("Steps: %d", rec.Steps.Count))
}

func (e exerciseModel) view() string {
	w := e.width - 4
	if e.formActive && e.form != nil {
		return activePanelStyle.Width(w).Render(e.form.View())
	}

	rec := e.session.Active()
	ex := e.session.Exercise()

	summary := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Exercise"),
		"",
		fmt.Sprintf("  Workouts  %s / %d completed",
			highlightStyle.Render(fmt.Sprint(rec.Workouts.Completed)), rec.Workouts.Goal),
		fmt.Sprintf("  Burned    %s kcal  %s",
			highlightStyle.Render(fmt.Sprint(rec.Calories.Burned)),
			mutedStyle.Render(fmt.Sprintf("(%d min active)", ex.TotalMinutes()))),
		fmt.Sprintf("  Steps     %s / %d  %s",
			highlightStyle.Render(fmt.Sprint(rec.Steps.Count)), rec.Steps.Goal,
			mutedStyle.Render(fmt.Sprintf("(%d%% of daily goal)", stats.StepsPercentRounded(rec)))),
	)

	var rows []string
	rows = append(rows, titleStyle.Render("Workouts"), "")
	workouts := ex.Workouts()
	if len(workouts) == 0 {
		rows = append(rows, mutedStyle.Render("  No workouts logged for this day"))
	}
	cursor := clampCursor(e.cursor, len(workouts))
	for i, wo := range workouts {
		prefix := "  "
		style := normalItemStyle
		if i == cursor {
			prefix = "> "
			style = selectedItemStyle
		}
		line := fmt.Sprintf("%s%s  %-11s %-22s %4d min %5d kcal",
			prefix, wo.Time, titleCase(string(wo.Type)), wo.Name, wo.Duration, wo.CaloriesBurned)
		rows = append(rows, style.Render(line))
	}
	rows = append(rows, "", mutedStyle.Render("  n: add workout  d: remove  s: set steps"))

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(w).Render(summary),
		panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}
