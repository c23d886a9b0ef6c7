// Package stats holds the daily aggregate model: the per-day record, the
// date-keyed mapping of records and the pure rules that derive and update them.
package stats

import "maps"

// Stats maps a date key to the record for that day.
type Stats map[string]DailyRecord

// Get returns the record for key, or a zeroed record with the default goals.
func (s Stats) Get(key string) DailyRecord {
	return s.GetOr(key, NewRecord(DefaultGoals()))
}

// GetOr returns the record for key, or fallback when the key is absent.
func (s Stats) GetOr(key string, fallback DailyRecord) DailyRecord {
	if r, ok := s[key]; ok {
		return r
	}
	return fallback
}

// Put returns a copy of s in which key maps to r. The receiver is left unchanged.
func (s Stats) Put(key string, r DailyRecord) Stats {
	next := make(Stats, len(s)+1)
	maps.Copy(next, s)
	next[key] = r
	return next
}
