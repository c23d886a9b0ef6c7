package stats

import "math"

// Percentage returns progress toward goal, capped at 100. goal must be positive.
func Percentage(value, goal float64) float64 {
	if goal <= 0 {
		panic("stats: percentage of non-positive goal")
	}
	return math.Min(100, value/goal*100)
}

// Progress is one metric's current value against its goal.
type Progress struct {
	Name  string
	Unit  string
	Value float64
	Goal  float64
}

func (p Progress) Percent() float64 {
	return Percentage(p.Value, p.Goal)
}

// Metrics lists the dashboard metrics of r in display order.
func Metrics(r DailyRecord) []Progress {
	return []Progress{
		{Name: "Calories", Unit: "kcal", Value: float64(r.Calories.Consumed), Goal: float64(r.Calories.Goal)},
		{Name: "Water", Unit: "glasses", Value: float64(r.Water.Consumed), Goal: float64(r.Water.Goal)},
		{Name: "Steps", Unit: "steps", Value: float64(r.Steps.Count), Goal: float64(r.Steps.Goal)},
		{Name: "Sleep", Unit: "hours", Value: r.Sleep.Hours, Goal: r.Sleep.Goal},
		{Name: "Workouts", Unit: "done", Value: float64(r.Workouts.Completed), Goal: float64(r.Workouts.Goal)},
	}
}

// CaloriesRemaining is the goal less intake plus what was burned.
func CaloriesRemaining(r DailyRecord) int {
	return r.Calories.Goal - r.Calories.Consumed + r.Calories.Burned
}

// WaterRemaining is how many glasses are left to reach the goal.
func WaterRemaining(r DailyRecord) int {
	return max(0, r.Water.Goal-r.Water.Consumed)
}

// StepsPercentRounded is the rounded, uncapped share of the step goal.
func StepsPercentRounded(r DailyRecord) int {
	if r.Steps.Goal <= 0 {
		panic("stats: percentage of non-positive goal")
	}
	return int(math.Round(float64(r.Steps.Count) / float64(r.Steps.Goal) * 100))
}

func SleepQualityLabel(quality int) string {
	switch {
	case quality < 4:
		return "Poor sleep quality"
	case quality < 7:
		return "Average sleep quality"
	default:
		return "Excellent sleep quality"
	}
}
