package tracker

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/fittrack/internal/stats"
)

type WorkoutType string

const (
	Cardio      WorkoutType = "cardio"
	Strength    WorkoutType = "strength"
	Flexibility WorkoutType = "flexibility"
	OtherType   WorkoutType = "other"
)

var WorkoutTypes = []WorkoutType{Cardio, Strength, Flexibility, OtherType}

type Workout struct {
	ID             string
	Name           string
	Type           WorkoutType
	Duration       int // minutes
	CaloriesBurned int
	Time           stats.TimeOfDay
}

// NewWorkoutDraft returns an empty 30 minute cardio entry stamped with now.
func NewWorkoutDraft(now time.Time) Workout {
	return Workout{Type: Cardio, Duration: 30, Time: stats.ClockOf(now)}
}

// Exercise keeps the workouts logged for one day.
type Exercise struct {
	workouts []Workout
	newID    func() string
}

func NewExercise() *Exercise {
	return &Exercise{newID: uuid.NewString}
}

func (e *Exercise) Workouts() []Workout {
	return slices.Clone(e.workouts)
}

// AddWorkout logs draft, counting it as completed and adding its burned calories.
func (e *Exercise) AddWorkout(rec stats.DailyRecord, draft Workout) (w Workout, next stats.DailyRecord, ok bool) {
	if draft.Name == "" {
		return Workout{}, rec, false
	}
	w = draft
	w.ID = e.newID()
	e.workouts = append(e.workouts, w)
	return w, rec.WithWorkoutAdded(w.CaloriesBurned), true
}

func (e *Exercise) RemoveWorkout(rec stats.DailyRecord, id string) (next stats.DailyRecord, ok bool) {
	i := slices.IndexFunc(e.workouts, func(w Workout) bool { return w.ID == id })
	if i < 0 {
		return rec, false
	}
	w := e.workouts[i]
	e.workouts = slices.Delete(e.workouts, i, i+1)
	return rec.WithWorkoutRemoved(w.CaloriesBurned), true
}

// UpdateSteps sets the absolute step count. The value is trusted as given.
func (e *Exercise) UpdateSteps(rec stats.DailyRecord, count int) stats.DailyRecord {
	return rec.WithSteps(count)
}

// TotalMinutes is the summed duration of the logged workouts.
func (e *Exercise) TotalMinutes() int {
	total := 0
	for _, w := range e.workouts {
		total += w.Duration
	}
	return total
}
