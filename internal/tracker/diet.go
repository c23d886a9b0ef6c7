package tracker

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/fittrack/internal/stats"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Meal is a logged food item. It lives only for the session; its calories are
// folded into the day's record.
type Meal struct {
	ID       string
	Name     string
	Calories int
	Protein  int // grams
	Carbs    int
	Fat      int
	Time     stats.TimeOfDay
	Type     MealType
}

// NewMealDraft returns an empty breakfast entry stamped with the time of now.
func NewMealDraft(now time.Time) Meal {
	return Meal{Type: Breakfast, Time: stats.ClockOf(now)}
}

// Diet keeps the meals logged for one day.
type Diet struct {
	meals []Meal
	newID func() string
}

func NewDiet() *Diet {
	return &Diet{newID: uuid.NewString}
}

// Meals returns the logged meals in insertion order.
func (d *Diet) Meals() []Meal {
	return slices.Clone(d.meals)
}

// AddMeal logs draft and applies it to rec. A draft without a name is ignored
// and ok is false.
func (d *Diet) AddMeal(rec stats.DailyRecord, draft Meal) (meal Meal, next stats.DailyRecord, ok bool) {
	if draft.Name == "" {
		return Meal{}, rec, false
	}
	meal = draft
	meal.ID = d.newID()
	d.meals = append(d.meals, meal)
	return meal, rec.WithMealAdded(meal.Calories), true
}

// RemoveMeal drops the meal with id and reverts its calories. Unknown ids are
// ignored and ok is false.
func (d *Diet) RemoveMeal(rec stats.DailyRecord, id string) (next stats.DailyRecord, ok bool) {
	i := slices.IndexFunc(d.meals, func(m Meal) bool { return m.ID == id })
	if i < 0 {
		return rec, false
	}
	meal := d.meals[i]
	d.meals = slices.Delete(d.meals, i, i+1)
	return rec.WithMealRemoved(meal.Calories), true
}

// UpdateWater adjusts the glasses of water by delta.
func (d *Diet) UpdateWater(rec stats.DailyRecord, delta int) stats.DailyRecord {
	return rec.WithWater(delta)
}

// Macros sums protein, carbs and fat across the logged meals.
func (d *Diet) Macros() (protein, carbs, fat int) {
	for _, m := range d.meals {
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}
	return protein, carbs, fat
}
