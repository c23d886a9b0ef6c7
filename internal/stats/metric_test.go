package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(5000, 10000))
	assert.Equal(t, 100.0, Percentage(15000, 10000))
	assert.Equal(t, 0.0, Percentage(0, 10000))
	assert.InDelta(t, 93.75, Percentage(7.5, 8), 1e-9)
}

func TestPercentagePanicsOnZeroGoal(t *testing.T) {
	assert.Panics(t, func() { Percentage(1, 0) })
}

func TestMetrics(t *testing.T) {
	r := NewRecord(DefaultGoals()).WithMealAdded(1000).WithSteps(2500).WithSleepHours(4)
	m := Metrics(r)
	assert.Len(t, m, 5)

	names := make([]string, len(m))
	for i, p := range m {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Calories", "Water", "Steps", "Sleep", "Workouts"}, names)
	assert.Equal(t, 50.0, m[0].Percent())
	assert.Equal(t, 0.0, m[1].Percent())
	assert.Equal(t, 25.0, m[2].Percent())
	assert.Equal(t, 50.0, m[3].Percent())
}

func TestCaloriesRemaining(t *testing.T) {
	r := NewRecord(DefaultGoals()).WithMealAdded(1500).WithWorkoutAdded(300)
	assert.Equal(t, 800, CaloriesRemaining(r))

	r = r.WithMealAdded(2000)
	assert.Equal(t, -1200, CaloriesRemaining(r))
}

func TestWaterRemaining(t *testing.T) {
	r := NewRecord(DefaultGoals()).WithWater(3)
	assert.Equal(t, 5, WaterRemaining(r))
	assert.Equal(t, 0, WaterRemaining(r.WithWater(10)))
}

func TestStepsPercentRounded(t *testing.T) {
	r := NewRecord(DefaultGoals())
	assert.Equal(t, 0, StepsPercentRounded(r))
	assert.Equal(t, 33, StepsPercentRounded(r.WithSteps(3333)))
	assert.Equal(t, 150, StepsPercentRounded(r.WithSteps(15000)))
}

func TestSleepQualityLabel(t *testing.T) {
	assert.Equal(t, "Poor sleep quality", SleepQualityLabel(0))
	assert.Equal(t, "Poor sleep quality", SleepQualityLabel(3))
	assert.Equal(t, "Average sleep quality", SleepQualityLabel(4))
	assert.Equal(t, "Average sleep quality", SleepQualityLabel(6))
	assert.Equal(t, "Excellent sleep quality", SleepQualityLabel(7))
	assert.Equal(t, "Excellent sleep quality", SleepQualityLabel(10))
}
