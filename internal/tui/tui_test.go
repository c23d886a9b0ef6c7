package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/fittrack/internal/datekey"
	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/store"
	"github.com/sadopc/fittrack/internal/tracker"
)

var testDay = time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err, "new memory store")
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	bed, wake := s.SleepSchedule()
	sess := tracker.NewSession(s, tracker.Options{
		Goals: s.Goals(stats.DefaultGoals()),
		Bed:   bed,
		Wake:  wake,
		Date:  testDay,
	})
	a := send(NewApp(sess, s), tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, s
}

// send feeds msg to the app and applies the status or navigation message its
// command produces, as the runtime would.
func send(a App, msg tea.Msg) App {
	m, cmd := a.Update(msg)
	a = m.(App)
	if cmd == nil || a.isFormActive() {
		return a
	}
	switch out := cmd().(type) {
	case statusMsg, dayChangedMsg, settingsDataMsg:
		m, _ = a.Update(out)
		a = m.(App)
	}
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func storedRecord(t *testing.T, s *store.Store, key string) stats.DailyRecord {
	t.Helper()
	st, err := s.LoadStats()
	require.NoError(t, err)
	rec, ok := st[key]
	require.True(t, ok, "no stored record for %s", key)
	return rec
}

type failingPersister struct{}

func (failingPersister) LoadStats() (stats.Stats, error) { return stats.Stats{}, nil }
func (failingPersister) SaveStats(stats.Stats) error     { return errors.New("disk full") }

// ============================================================
// App
// ============================================================

func TestViewBeforeResize(t *testing.T) {
	s := newTestStore(t)
	a := NewApp(tracker.NewSession(s, tracker.Options{Date: testDay}), s)
	assert.Equal(t, "Loading...", a.View())
}

func TestHeaderShowsTitleAndDay(t *testing.T) {
	a, _ := newTestApp(t)
	v := a.View()
	assert.Contains(t, v, "fittrack")
	assert.Contains(t, v, "Jun 1 2024")
	for _, name := range viewNames {
		assert.Contains(t, v, name)
	}
}

func TestTabSwitching(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		key  string
		want viewState
	}{
		{"2", viewDiet},
		{"3", viewExercise},
		{"4", viewSleep},
		{"5", viewSettings},
		{"1", viewDashboard},
	}
	for _, tt := range tests {
		a = send(a, runes(tt.key))
		assert.Equal(t, tt.want, a.activeView, "key %s", tt.key)
	}

	a = send(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewDiet, a.activeView)
}

func TestTabWrapsAround(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("5"))
	a = send(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewDashboard, a.activeView)
}

func TestDateNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	a = send(a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "2024-05-31", a.session.Key())
	assert.Equal(t, "Viewing 2024-05-31", a.status)

	a = send(a, tea.KeyMsg{Type: tea.KeyRight})
	a = send(a, runes("l"))
	assert.Equal(t, "2024-06-02", a.session.Key())

	a = send(a, runes("t"))
	assert.Equal(t, datekey.Today(), a.session.Key())
}

func TestDayChangeResetsCursors(t *testing.T) {
	a, _ := newTestApp(t)
	a.diet.cursor = 3
	a.exercise.cursor = 2
	a = send(a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Zero(t, a.diet.cursor)
	assert.Zero(t, a.exercise.cursor)
}

func TestNavigationDoesNotMaterializeDays(t *testing.T) {
	a, s := newTestApp(t)
	a = send(a, tea.KeyMsg{Type: tea.KeyLeft})
	_ = a.View()
	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Empty(t, st)
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("?"))
	assert.True(t, a.showHelp)
	a = send(a, runes("?"))
	assert.False(t, a.showHelp)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := a.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ============================================================
// Dashboard
// ============================================================

func TestDashboardShowsMetrics(t *testing.T) {
	a, _ := newTestApp(t)
	a.session.AddMeal(tracker.Meal{Name: "Oats", Calories: 500})

	v := a.View()
	for _, name := range []string{"Calories", "Water", "Steps", "Sleep", "Workouts"} {
		assert.Contains(t, v, name)
	}
	assert.Contains(t, v, "500 / 2000 kcal")
	assert.Contains(t, v, "1500 remaining")
	assert.Contains(t, v, "8 more to go")
}

func TestMetricDetail(t *testing.T) {
	rec := stats.NewRecord(stats.DefaultGoals()).
		WithMealAdded(1200).
		WithWorkoutAdded(300).
		WithSteps(5000).
		WithSleepQuality(7)

	assert.Equal(t, "300 burned • 1100 remaining", metricDetail(rec, "Calories"))
	assert.Equal(t, "8 more to go", metricDetail(rec, "Water"))
	assert.Equal(t, "50% of daily goal", metricDetail(rec, "Steps"))
	assert.Equal(t, "Quality: 7/10", metricDetail(rec, "Sleep"))
	assert.Equal(t, "1 of 1 completed", metricDetail(rec, "Workouts"))
	assert.Empty(t, metricDetail(rec, "Unknown"))
}

func TestDashboardHandlesNegativeIntake(t *testing.T) {
	a, _ := newTestApp(t)
	m, _, ok := a.session.AddMeal(tracker.Meal{Name: "Toast", Calories: 200})
	require.True(t, ok)
	a.session.Put(a.session.Key(), a.session.Active().WithMealRemoved(500))
	_, ok = a.session.RemoveMeal(m.ID)
	require.True(t, ok)

	assert.NotPanics(t, func() { _ = a.View() })
}

// ============================================================
// Diet
// ============================================================

func TestDietWaterKeys(t *testing.T) {
	a, s := newTestApp(t)
	a = send(a, runes("2"))

	a = send(a, runes("+"))
	a = send(a, runes("+"))
	a = send(a, runes("-"))
	assert.Equal(t, 1, a.session.Active().Water.Consumed)
	assert.Equal(t, "Water: 1 glasses", a.status)
	assert.Equal(t, 1, storedRecord(t, s, "2024-06-01").Water.Consumed)

	a = send(a, runes("-"))
	a = send(a, runes("-"))
	assert.Zero(t, a.session.Active().Water.Consumed)
}

func TestDietRemoveSelectedMeal(t *testing.T) {
	a, s := newTestApp(t)
	a.session.AddMeal(tracker.Meal{Name: "Oats", Calories: 300})
	a.session.AddMeal(tracker.Meal{Name: "Salad", Calories: 450})
	a = send(a, runes("2"))

	a = send(a, runes("j"))
	assert.Equal(t, 1, a.diet.cursor)
	a = send(a, runes("d"))

	meals := a.session.Diet().Meals()
	require.Len(t, meals, 1)
	assert.Equal(t, "Oats", meals[0].Name)
	assert.Equal(t, 300, a.session.Active().Calories.Consumed)
	assert.Equal(t, "Removed Salad", a.status)
	assert.Zero(t, a.diet.cursor)
	assert.Equal(t, 300, storedRecord(t, s, "2024-06-01").Calories.Consumed)
}

func TestDietDeleteWithNoMeals(t *testing.T) {
	a, s := newTestApp(t)
	a = send(a, runes("2"))
	a = send(a, runes("d"))
	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Empty(t, st)
}

func TestDietFormCapturesKeys(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("2"))
	a = send(a, runes("n"))
	require.True(t, a.diet.formActive)

	// Global keys go to the form while it is open.
	a = send(a, runes("1"))
	assert.Equal(t, viewDiet, a.activeView)

	a = send(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.diet.formActive)
	assert.Empty(t, a.session.Diet().Meals())
}

func TestDietSubmit(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.diet
	*d.formName = "  Pasta "
	*d.formType = string(tracker.Dinner)
	*d.formTime = "19:30"
	*d.formCalories = "650"
	*d.formProtein = "25"
	*d.formCarbs = ""
	*d.formFat = "12"

	msg := d.submit()().(statusMsg)
	assert.False(t, msg.isError)
	assert.Equal(t, "Added Pasta (650 kcal)", msg.text)

	meals := a.session.Diet().Meals()
	require.Len(t, meals, 1)
	assert.Equal(t, tracker.Dinner, meals[0].Type)
	assert.Equal(t, "19:30", meals[0].Time.String())
	assert.Zero(t, meals[0].Carbs)
	assert.Equal(t, 650, a.session.Active().Calories.Consumed)
}

func TestDietSubmitRejectsBadInput(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.diet
	*d.formName = "Pasta"
	*d.formTime = "late"
	msg := d.submit()().(statusMsg)
	assert.True(t, msg.isError)

	*d.formTime = "12:00"
	*d.formName = "   "
	msg = d.submit()().(statusMsg)
	assert.True(t, msg.isError)
	assert.Equal(t, "Meal needs a name", msg.text)
	assert.Zero(t, a.session.Active().Calories.Consumed)
}

// ============================================================
// Exercise
// ============================================================

func TestExerciseSubmitWorkout(t *testing.T) {
	a, s := newTestApp(t)
	e := a.exercise
	*e.formName = "Run"
	*e.formType = string(tracker.Cardio)
	*e.formTime = "07:00"
	*e.formDuration = "45"
	*e.formBurned = "400"

	msg := e.submitWorkout()().(statusMsg)
	assert.Equal(t, "Added Run (45 min)", msg.text)

	rec := storedRecord(t, s, "2024-06-01")
	assert.Equal(t, 400, rec.Calories.Burned)
	assert.Equal(t, 1, rec.Workouts.Completed)
	assert.Equal(t, 45, a.session.Exercise().TotalMinutes())
}

func TestExerciseSubmitSteps(t *testing.T) {
	a, s := newTestApp(t)
	e := a.exercise
	*e.formSteps = "8500"
	msg := e.submitSteps()().(statusMsg)
	assert.Equal(t, "Steps: 8500", msg.text)
	assert.Equal(t, 8500, storedRecord(t, s, "2024-06-01").Steps.Count)

	*e.formSteps = "-3"
	msg = e.submitSteps()().(statusMsg)
	assert.True(t, msg.isError)
	assert.Equal(t, 8500, a.session.Active().Steps.Count)
}

func TestExerciseRemoveWorkout(t *testing.T) {
	a, _ := newTestApp(t)
	a.session.AddWorkout(tracker.Workout{Name: "Yoga", Type: tracker.Flexibility, CaloriesBurned: 120})
	a = send(a, runes("3"))
	a = send(a, runes("d"))

	rec := a.session.Active()
	assert.Zero(t, rec.Workouts.Completed)
	assert.Zero(t, rec.Calories.Burned)
	assert.Equal(t, "Removed Yoga", a.status)
}

func TestExerciseFormKinds(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("3"))
	a = send(a, runes("s"))
	require.True(t, a.exercise.formActive)
	assert.Equal(t, exerciseFormSteps, a.exercise.formKind)
	assert.Equal(t, "0", *a.exercise.formSteps)

	a = send(a, tea.KeyMsg{Type: tea.KeyEsc})
	a = send(a, runes("n"))
	assert.Equal(t, exerciseFormWorkout, a.exercise.formKind)
	assert.Equal(t, "cardio", *a.exercise.formType)
	assert.Equal(t, "30", *a.exercise.formDuration)
}

// ============================================================
// Sleep
// ============================================================

func TestSleepUpdateHours(t *testing.T) {
	a, s := newTestApp(t)
	a = send(a, runes("4"))
	a = send(a, runes("u"))

	assert.Equal(t, 8.0, a.session.Active().Sleep.Hours)
	assert.Equal(t, "Sleep: 8 hours", a.status)
	assert.Equal(t, 8.0, storedRecord(t, s, "2024-06-01").Sleep.Hours)
}

func TestSleepQualityIsClamped(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("4"))

	a = send(a, runes("-"))
	assert.Zero(t, a.session.Active().Sleep.Quality)

	for range 12 {
		a = send(a, runes("+"))
	}
	assert.Equal(t, maxSleepQuality, a.session.Active().Sleep.Quality)
	assert.Contains(t, a.View(), "Excellent sleep quality")
}

func TestSleepEditTimes(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("4"))
	a = send(a, runes("e"))
	require.True(t, a.sleep.formActive)
	assert.Equal(t, "22:00", *a.sleep.formBed)
	assert.Equal(t, "06:00", *a.sleep.formWake)
	a = send(a, tea.KeyMsg{Type: tea.KeyEsc})

	a.session.SetSleepTimes(stats.TimeOfDay{Hour: 23, Minute: 30}, stats.TimeOfDay{Hour: 7})
	a = send(a, runes("u"))
	assert.Equal(t, 7.5, a.session.Active().Sleep.Hours)
	assert.True(t, strings.Contains(a.View(), "23:30"))
}

// ============================================================
// Settings
// ============================================================

func TestSettingsSave(t *testing.T) {
	a, s := newTestApp(t)
	st := a.settings
	*st.goalCalories = "2500"
	*st.goalWater = "10"
	*st.goalSteps = "12000"
	*st.goalSleep = "7.5"
	*st.goalWorkouts = "2"
	*st.bedTime = "23:00"
	*st.wakeTime = "07:00"

	require.NoError(t, st.saveSettings())

	want := stats.Goals{Calories: 2500, Water: 10, Steps: 12000, Sleep: 7.5, Workouts: 2}
	assert.Equal(t, want, s.Goals(stats.DefaultGoals()))
	assert.Equal(t, want, a.session.Goals())
	bed, wake := s.SleepSchedule()
	assert.Equal(t, "23:00", bed.String())
	assert.Equal(t, "07:00", wake.String())
	assert.Equal(t, 8.0, a.session.Sleep().Hours())

	// Unseen days pick up the new goals.
	a = send(a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2500, a.session.Active().Calories.Goal)
}

func TestSettingsRejectInvalidGoals(t *testing.T) {
	a, s := newTestApp(t)
	st := a.settings
	*st.goalCalories = "0"
	*st.goalWater = "8"
	*st.goalSteps = "10000"
	*st.goalSleep = "8"
	*st.goalWorkouts = "1"
	*st.bedTime = "22:00"
	*st.wakeTime = "06:00"

	assert.Error(t, st.saveSettings())
	assert.Equal(t, stats.DefaultGoals(), s.Goals(stats.DefaultGoals()))
	assert.Equal(t, stats.DefaultGoals(), a.session.Goals())
}

func TestSettingsViewListsStored(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(a, runes("5"))
	require.NotEmpty(t, a.settings.settings)
	v := a.View()
	assert.Contains(t, v, "default_bed_time")
	assert.Contains(t, v, "Goals for new days")
}

func TestSettingsRefreshReportsStoreError(t *testing.T) {
	s, err := store.NewMemory()
	require.NoError(t, err)
	sess := tracker.NewSession(s, tracker.Options{Date: testDay})
	require.NoError(t, s.Close())

	msg, ok := newSettingsModel(s, sess).refresh()().(statusMsg)
	require.True(t, ok, "expected a status message")
	assert.True(t, msg.isError)
	assert.Contains(t, msg.text, "Settings:")
}

// ============================================================
// Helpers
// ============================================================

func TestMutationStatusReportsPersistFailure(t *testing.T) {
	sess := tracker.NewSession(failingPersister{}, tracker.Options{Date: testDay})
	sess.UpdateWater(1)

	msg := mutationStatus(sess, "Water: 1 glasses")().(statusMsg)
	assert.True(t, msg.isError)
	assert.Contains(t, msg.text, "disk full")
	assert.Equal(t, 1, sess.Active().Water.Consumed)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{" 42 ", 42, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validatePositiveInt("3"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveFloat("7.5"))
	assert.Error(t, validatePositiveFloat("0"))
	assert.NoError(t, validateTimeOfDay("06:05"))
	assert.Error(t, validateTimeOfDay("6am"))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(5, 0))
	assert.Equal(t, 2, clampCursor(5, 3))
	assert.Equal(t, 1, clampCursor(1, 3))
	assert.Equal(t, 0, clampCursor(-1, 3))
}

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name   string
		render func() string
	}{
		{"title", func() string { return titleStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"date", func() string { return dateStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"selected", func() string { return selectedItemStyle.Render("test") }},
	}
	for _, s := range styles {
		assert.Contains(t, s.render(), "test", s.name)
	}
}
