package tracker

import "github.com/sadopc/fittrack/internal/stats"

// Sleep holds the bed and wake times the sleep hours are computed from.
type Sleep struct {
	Bed  stats.TimeOfDay
	Wake stats.TimeOfDay
}

func NewSleep(bed, wake stats.TimeOfDay) *Sleep {
	return &Sleep{Bed: bed, Wake: wake}
}

// Hours is the duration between the current bed and wake times.
func (s *Sleep) Hours() float64 {
	return stats.SleepDuration(s.Bed, s.Wake)
}

// UpdateSleepHours overwrites the record's sleep hours from Bed and Wake.
func (s *Sleep) UpdateSleepHours(rec stats.DailyRecord) stats.DailyRecord {
	return rec.WithSleepHours(s.Hours())
}

// UpdateSleepQuality overwrites the quality rating. Callers keep it in 0-10.
func (s *Sleep) UpdateSleepQuality(rec stats.DailyRecord, quality int) stats.DailyRecord {
	return rec.WithSleepQuality(quality)
}
