package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/fittrack/internal/stats"
)

const (
	SettingBedTime  = "default_bed_time"
	SettingWakeTime = "default_wake_time"

	SettingGoalCalories = "goal_calories"
	SettingGoalWater    = "goal_water"
	SettingGoalSteps    = "goal_steps"
	SettingGoalSleep    = "goal_sleep"
	SettingGoalWorkouts = "goal_workouts"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Goals returns the stored goal overrides layered over fallback. Missing or
// non-positive values keep the fallback.
func (s *Store) Goals(fallback stats.Goals) stats.Goals {
	g := fallback
	g.Calories = s.positiveInt(SettingGoalCalories, g.Calories)
	g.Water = s.positiveInt(SettingGoalWater, g.Water)
	g.Steps = s.positiveInt(SettingGoalSteps, g.Steps)
	g.Workouts = s.positiveInt(SettingGoalWorkouts, g.Workouts)
	if v, err := s.GetSetting(SettingGoalSleep); err == nil {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			g.Sleep = f
		}
	}
	return g
}

func (s *Store) SaveGoals(g stats.Goals) error {
	if !g.Valid() {
		return fmt.Errorf("save goals: every goal must be positive")
	}
	values := map[string]string{
		SettingGoalCalories: strconv.Itoa(g.Calories),
		SettingGoalWater:    strconv.Itoa(g.Water),
		SettingGoalSteps:    strconv.Itoa(g.Steps),
		SettingGoalSleep:    strconv.FormatFloat(g.Sleep, 'f', -1, 64),
		SettingGoalWorkouts: strconv.Itoa(g.Workouts),
	}
	for k, v := range values {
		if err := s.SetSetting(k, v); err != nil {
			return fmt.Errorf("save goal %q: %w", k, err)
		}
	}
	return nil
}

// SleepSchedule returns the default bed and wake times, falling back to
// 22:00 and 06:00 when unset or malformed.
func (s *Store) SleepSchedule() (bed, wake stats.TimeOfDay) {
	bed = s.timeOfDay(SettingBedTime, stats.TimeOfDay{Hour: 22})
	wake = s.timeOfDay(SettingWakeTime, stats.TimeOfDay{Hour: 6})
	return bed, wake
}

func (s *Store) SaveSleepSchedule(bed, wake stats.TimeOfDay) error {
	if err := s.SetSetting(SettingBedTime, bed.String()); err != nil {
		return err
	}
	return s.SetSetting(SettingWakeTime, wake.String())
}

func (s *Store) positiveInt(key string, fallback int) int {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *Store) timeOfDay(key string, fallback stats.TimeOfDay) stats.TimeOfDay {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	t, err := stats.ParseTimeOfDay(v)
	if err != nil {
		return fallback
	}
	return t
}
