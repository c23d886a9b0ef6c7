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

type dietModel struct {
	session *tracker.Session
	width   int
	height  int
	cursor  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formName     *string
	formType     *string
	formTime     *string
	formCalories *string
	formProtein  *string
	formCarbs    *string
	formFat      *string
}

func newDietModel(s *tracker.Session) dietModel {
	n, mt, tm, c, p, cb, f := "", "", "", "", "", "", ""
	return dietModel{
		session:      s,
		formName:     &n,
		formType:     &mt,
		formTime:     &tm,
		formCalories: &c,
		formProtein:  &p,
		formCarbs:    &cb,
		formFat:      &f,
	}
}

func (d *dietModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dietModel) update(msg tea.Msg) (dietModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	meals := d.session.Diet().Meals()
	d.cursor = clampCursor(d.cursor, len(meals))

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(meals)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.New):
			return d.showForm()
		case key.Matches(msg, keys.Delete):
			if len(meals) == 0 {
				return d, nil
			}
			m := meals[d.cursor]
			if _, ok := d.session.RemoveMeal(m.ID); !ok {
				return d, statusCmd("Meal not found", true)
			}
			d.cursor = clampCursor(d.cursor, len(meals)-1)
			return d, mutationStatus(d.session, "Removed "+m.Name)
		case key.Matches(msg, keys.Plus):
			rec := d.session.UpdateWater(1)
			return d, mutationStatus(d.session, fmt.Sprintf("Water: %d glasses", rec.Water.Consumed))
		case key.Matches(msg, keys.Minus):
			rec := d.session.UpdateWater(-1)
			return d, mutationStatus(d.session, fmt.Sprintf("Water: %d glasses", rec.Water.Consumed))
		}
	}
	return d, nil
}

func (d dietModel) showForm() (dietModel, tea.Cmd) {
	draft := tracker.NewMealDraft(time.Now())
	*d.formName = ""
	*d.formType = string(draft.Type)
	*d.formTime = draft.Time.String()
	*d.formCalories = ""
	*d.formProtein = ""
	*d.formCarbs = ""
	*d.formFat = ""

	var typeOpts []huh.Option[string]
	for _, t := range tracker.MealTypes {
		typeOpts = append(typeOpts, huh.NewOption(titleCase(string(t)), string(t)))
	}

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Food").Value(d.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Meal").Options(typeOpts...).Value(d.formType),
			huh.NewInput().Title("Time (HH:MM)").Value(d.formTime).Validate(validateTimeOfDay),
		).Title("Add Meal"),
		huh.NewGroup(
			huh.NewInput().Title("Calories (kcal)").Value(d.formCalories).Validate(validateCount),
			huh.NewInput().Title("Protein (g)").Value(d.formProtein).Validate(validateCount),
			huh.NewInput().Title("Carbs (g)").Value(d.formCarbs).Validate(validateCount),
			huh.NewInput().Title("Fat (g)").Value(d.formFat).Validate(validateCount),
		).Title("Nutrition"),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dietModel) updateForm(msg tea.Msg) (dietModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		d.form = nil
		return d, d.submit()
	}
	return d, cmd
}

func (d dietModel) submit() tea.Cmd {
	m, ok := d.draft()
	if !ok {
		return statusCmd("Invalid meal", true)
	}
	added, _, ok := d.session.AddMeal(m)
	if !ok {
		return statusCmd("Meal needs a name", true)
	}
	return mutationStatus(d.session, fmt.Sprintf("Added %s (%d kcal)", added.Name, added.Calories))
}

func (d dietModel) draft() (tracker.Meal, bool) {
	t, err := stats.ParseTimeOfDay(strings.TrimSpace(*d.formTime))
	if err != nil {
		return tracker.Meal{}, false
	}
	var nums [4]int
	for i, s := range []string{*d.formCalories, *d.formProtein, *d.formCarbs, *d.formFat} {
		n, err := parseCount(s)
		if err != nil {
			return tracker.Meal{}, false
		}
		nums[i] = n
	}
	return tracker.Meal{
		Name:     strings.TrimSpace(*d.formName),
		Type:     tracker.MealType(*d.formType),
		Time:     t,
		Calories: nums[0],
		Protein:  nums[1],
		Carbs:    nums[2],
		Fat:      nums[3],
	}, true
}

func (d dietModel) view() string {
	w := d.width - 4
	if d.formActive && d.form != nil {
		return activePanelStyle.Width(w).Render(d.form.View())
	}

	rec := d.session.Active()
	diet := d.session.Diet()
	protein, carbs, fat := diet.Macros()

	summary := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Diet"),
		"",
		fmt.Sprintf("  Calories  %s / %d kcal  %s",
			highlightStyle.Render(fmt.Sprint(rec.Calories.Consumed)), rec.Calories.Goal,
			mutedStyle.Render(fmt.Sprintf("(%d remaining)", stats.CaloriesRemaining(rec)))),
		fmt.Sprintf("  Water     %s / %d glasses  %s",
			highlightStyle.Render(fmt.Sprint(rec.Water.Consumed)), rec.Water.Goal,
			mutedStyle.Render(fmt.Sprintf("(%d more to go)", stats.WaterRemaining(rec)))),
		fmt.Sprintf("  Macros    %dg protein • %dg carbs • %dg fat", protein, carbs, fat),
	)

	var rows []string
	rows = append(rows, titleStyle.Render("Meals"), "")
	meals := diet.Meals()
	if len(meals) == 0 {
		rows = append(rows, mutedStyle.Render("  No meals logged for this day"))
	}
	cursor := clampCursor(d.cursor, len(meals))
	for i, m := range meals {
		prefix := "  "
		style := normalItemStyle
		if i == cursor {
			prefix = "> "
			style = selectedItemStyle
		}
		line := fmt.Sprintf("%s%s  %-9s %-24s %5d kcal", prefix, m.Time, titleCase(string(m.Type)), m.Name, m.Calories)
		rows = append(rows, style.Render(line))
	}
	rows = append(rows, "", mutedStyle.Render("  n: add meal  d: remove  +/-: water"))

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(w).Render(summary),
		panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
