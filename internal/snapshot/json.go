// Package snapshot serializes the whole date-keyed stats mapping to the
// human-readable JSON text kept in the storage slot.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sadopc/fittrack/internal/stats"
)

func Encode(s stats.Stats) ([]byte, error) {
	if s == nil {
		s = stats.Stats{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}
	return data, nil
}

// Decode parses a slot value. Empty input decodes to an empty mapping.
func Decode(data []byte) (stats.Stats, error) {
	s := stats.Stats{}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	if s == nil {
		s = stats.Stats{}
	}
	return s, nil
}
