// Package tracker folds logged meals, workouts, water, steps and sleep into the
// per-day records owned by a Session.
package tracker

import (
	"fmt"
	"maps"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sadopc/fittrack/internal/datekey"
	"github.com/sadopc/fittrack/internal/stats"
)

// Persister reads and writes the whole stats mapping as one unit.
type Persister interface {
	LoadStats() (stats.Stats, error)
	SaveStats(stats.Stats) error
}

type Options struct {
	Goals stats.Goals
	Bed   stats.TimeOfDay
	Wake  stats.TimeOfDay
	Date  time.Time
}

// Session is the single writer of the stats mapping. Every mutation reads the
// active day's record, replaces it whole and persists the full mapping.
// A Session is not safe for concurrent use.
type Session struct {
	persister Persister
	goals     stats.Goals
	stats     stats.Stats
	key       string

	diets     map[string]*Diet
	exercises map[string]*Exercise
	sleep     *Sleep

	lastErr error
}

// NewSession loads the persisted mapping and selects opts.Date. A load failure
// is logged and the session starts empty; a store that cannot decode its slot
// keeps a backup copy before reporting the failure.
func NewSession(p Persister, opts Options) *Session {
	if !opts.Goals.Valid() {
		opts.Goals = stats.DefaultGoals()
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	s := &Session{
		persister: p,
		goals:     opts.Goals,
		key:       datekey.Resolve(opts.Date),
		diets:     make(map[string]*Diet),
		exercises: make(map[string]*Exercise),
		sleep:     NewSleep(opts.Bed, opts.Wake),
	}
	s.load()
	return s
}

func (s *Session) load() {
	loaded, err := s.persister.LoadStats()
	if err != nil {
		log.WithError(err).Error("load stats, starting with an empty store")
		loaded = stats.Stats{}
	}
	if loaded == nil {
		loaded = stats.Stats{}
	}
	for key, rec := range loaded {
		if fixed, changed := rec.RepairGoals(s.goals); changed {
			log.WithField("date", key).Warn("stored record had a non-positive goal, using configured default")
			loaded[key] = fixed
		}
	}
	s.stats = loaded
	log.Debugf("loaded %d daily records", len(loaded))
}

// Key is the date key of the active day.
func (s *Session) Key() string { return s.key }

// SelectDate makes the day of t active and returns its key.
func (s *Session) SelectDate(t time.Time) string {
	s.key = datekey.Resolve(t)
	return s.key
}

func (s *Session) SelectKey(key string) error {
	if _, err := datekey.Parse(key); err != nil {
		return err
	}
	s.key = key
	return nil
}

// ShiftDay moves the active day by days.
func (s *Session) ShiftDay(days int) error {
	next, err := datekey.Shift(s.key, days)
	if err != nil {
		return err
	}
	s.key = next
	return nil
}

// Get returns the record for key, or a zeroed one with the current goals.
func (s *Session) Get(key string) stats.DailyRecord {
	return s.stats.GetOr(key, stats.NewRecord(s.goals))
}

// Active returns the record of the active day.
func (s *Session) Active() stats.DailyRecord {
	return s.Get(s.key)
}

// Put replaces the record for key and persists the whole mapping. A failed
// write is logged and remembered; the in-memory mapping stays authoritative
// and the next Put writes it again.
func (s *Session) Put(key string, rec stats.DailyRecord) {
	s.stats = s.stats.Put(key, rec)
	if err := s.persister.SaveStats(s.stats); err != nil {
		s.lastErr = err
		log.WithError(err).WithField("date", key).Error("persist stats")
		return
	}
	s.lastErr = nil
}

// LastPersistError is the error of the most recent write, or nil if it succeeded.
func (s *Session) LastPersistError() error { return s.lastErr }

// Stats returns a copy of the whole mapping.
func (s *Session) Stats() stats.Stats { return maps.Clone(s.stats) }

func (s *Session) Goals() stats.Goals { return s.goals }

// SetGoals changes the goals given to days not yet recorded. Existing records
// keep their own goals.
func (s *Session) SetGoals(g stats.Goals) error {
	if !g.Valid() {
		return fmt.Errorf("set goals: every goal must be positive")
	}
	s.goals = g
	return nil
}

// Diet returns the meal log of the active day for reading. A day with no
// logged meals gets an empty, unattached log; change it through the Session.
func (s *Session) Diet() *Diet {
	if d, ok := s.diets[s.key]; ok {
		return d
	}
	return NewDiet()
}

// Exercise returns the workout log of the active day for reading, like Diet.
func (s *Session) Exercise() *Exercise {
	if e, ok := s.exercises[s.key]; ok {
		return e
	}
	return NewExercise()
}

// dietForWrite returns the active day's meal log, creating it on first use.
func (s *Session) dietForWrite() *Diet {
	d, ok := s.diets[s.key]
	if !ok {
		d = NewDiet()
		s.diets[s.key] = d
	}
	return d
}

func (s *Session) exerciseForWrite() *Exercise {
	e, ok := s.exercises[s.key]
	if !ok {
		e = NewExercise()
		s.exercises[s.key] = e
	}
	return e
}

func (s *Session) Sleep() *Sleep { return s.sleep }

func (s *Session) AddMeal(draft Meal) (Meal, stats.DailyRecord, bool) {
	m, next, ok := s.dietForWrite().AddMeal(s.Active(), draft)
	if ok {
		s.Put(s.key, next)
	}
	return m, next, ok
}

func (s *Session) RemoveMeal(id string) (stats.DailyRecord, bool) {
	next, ok := s.Diet().RemoveMeal(s.Active(), id)
	if ok {
		s.Put(s.key, next)
	}
	return next, ok
}

func (s *Session) AddWorkout(draft Workout) (Workout, stats.DailyRecord, bool) {
	w, next, ok := s.exerciseForWrite().AddWorkout(s.Active(), draft)
	if ok {
		s.Put(s.key, next)
	}
	return w, next, ok
}

func (s *Session) RemoveWorkout(id string) (stats.DailyRecord, bool) {
	next, ok := s.Exercise().RemoveWorkout(s.Active(), id)
	if ok {
		s.Put(s.key, next)
	}
	return next, ok
}

func (s *Session) UpdateWater(delta int) stats.DailyRecord {
	next := s.Diet().UpdateWater(s.Active(), delta)
	s.Put(s.key, next)
	return next
}

func (s *Session) UpdateSteps(count int) stats.DailyRecord {
	next := s.Exercise().UpdateSteps(s.Active(), count)
	s.Put(s.key, next)
	return next
}

// SetSleepTimes changes the bed and wake times used by UpdateSleepHours.
func (s *Session) SetSleepTimes(bed, wake stats.TimeOfDay) {
	s.sleep.Bed = bed
	s.sleep.Wake = wake
}

func (s *Session) UpdateSleepHours() stats.DailyRecord {
	next := s.sleep.UpdateSleepHours(s.Active())
	s.Put(s.key, next)
	return next
}

func (s *Session) UpdateSleepQuality(quality int) stats.DailyRecord {
	next := s.sleep.UpdateSleepQuality(s.Active(), quality)
	s.Put(s.key, next)
	return next
}
