package stats

type Calories struct {
	Consumed int `json:"consumed"`
	Burned   int `json:"burned"`
	Goal     int `json:"goal"`
}

type Water struct {
	Consumed int `json:"consumed"` // glasses
	Goal     int `json:"goal"`
}

type Steps struct {
	Count int `json:"count"`
	Goal  int `json:"goal"`
}

type Sleep struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"` // 0-10
	Goal    float64 `json:"goal"`
}

type Workouts struct {
	Completed int `json:"completed"`
	Goal      int `json:"goal"`
}

// DailyRecord is the aggregate snapshot of every tracked metric for one day.
// Mutators return a new record and never modify the receiver.
type DailyRecord struct {
	Calories Calories `json:"calories"`
	Water    Water    `json:"water"`
	Steps    Steps    `json:"steps"`
	Sleep    Sleep    `json:"sleep"`
	Workouts Workouts `json:"workouts"`
}

// Goals are the targets a freshly materialized day starts with.
type Goals struct {
	Calories int     `toml:"calories"`
	Water    int     `toml:"water"`
	Steps    int     `toml:"steps"`
	Sleep    float64 `toml:"sleep"`
	Workouts int     `toml:"workouts"`
}

// DefaultGoals returns the built-in targets.
func DefaultGoals() Goals {
	return Goals{
		Calories: 2000,
		Water:    8,
		Steps:    10000,
		Sleep:    8,
		Workouts: 1,
	}
}

// Valid reports whether every goal is positive.
func (g Goals) Valid() bool {
	return g.Calories > 0 && g.Water > 0 && g.Steps > 0 && g.Sleep > 0 && g.Workouts > 0
}

// NewRecord returns a zeroed record carrying the given goals.
func NewRecord(g Goals) DailyRecord {
	return DailyRecord{
		Calories: Calories{Goal: g.Calories},
		Water:    Water{Goal: g.Water},
		Steps:    Steps{Goal: g.Steps},
		Sleep:    Sleep{Goal: g.Sleep},
		Workouts: Workouts{Goal: g.Workouts},
	}
}

// Goals extracts the targets stored on the record.
func (r DailyRecord) Goals() Goals {
	return Goals{
		Calories: r.Calories.Goal,
		Water:    r.Water.Goal,
		Steps:    r.Steps.Goal,
		Sleep:    r.Sleep.Goal,
		Workouts: r.Workouts.Goal,
	}
}

// RepairGoals replaces every non-positive goal with the matching fallback.
// The second result reports whether anything changed.
func (r DailyRecord) RepairGoals(fallback Goals) (DailyRecord, bool) {
	changed := false
	if r.Calories.Goal <= 0 {
		r.Calories.Goal = fallback.Calories
		changed = true
	}
	if r.Water.Goal <= 0 {
		r.Water.Goal = fallback.Water
		changed = true
	}
	if r.Steps.Goal <= 0 {
		r.Steps.Goal = fallback.Steps
		changed = true
	}
	if r.Sleep.Goal <= 0 {
		r.Sleep.Goal = fallback.Sleep
		changed = true
	}
	if r.Workouts.Goal <= 0 {
		r.Workouts.Goal = fallback.Workouts
		changed = true
	}
	return r, changed
}

// WithMealAdded adds a meal's calories to the consumed total.
func (r DailyRecord) WithMealAdded(calories int) DailyRecord {
	r.Calories.Consumed += calories
	return r
}

// WithMealRemoved subtracts a meal's calories. The total is not floored at zero.
func (r DailyRecord) WithMealRemoved(calories int) DailyRecord {
	r.Calories.Consumed -= calories
	return r
}

// WithWorkoutAdded counts a completed workout and its burned calories.
func (r DailyRecord) WithWorkoutAdded(burned int) DailyRecord {
	r.Calories.Burned += burned
	r.Workouts.Completed++
	return r
}

// WithWorkoutRemoved reverts a workout. The completed count is floored at zero,
// burned calories are not.
func (r DailyRecord) WithWorkoutRemoved(burned int) DailyRecord {
	r.Calories.Burned -= burned
	r.Workouts.Completed = max(0, r.Workouts.Completed-1)
	return r
}

// WithWater adjusts the glasses of water by delta, never going below zero.
func (r DailyRecord) WithWater(delta int) DailyRecord {
	r.Water.Consumed = max(0, r.Water.Consumed+delta)
	return r
}

// WithSteps sets the absolute step count.
func (r DailyRecord) WithSteps(count int) DailyRecord {
	r.Steps.Count = count
	return r
}

func (r DailyRecord) WithSleepHours(hours float64) DailyRecord {
	r.Sleep.Hours = hours
	return r
}

func (r DailyRecord) WithSleepQuality(quality int) DailyRecord {
	r.Sleep.Quality = quality
	return r
}
