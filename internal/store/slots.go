package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/sadopc/fittrack/internal/snapshot"
	"github.com/sadopc/fittrack/internal/stats"
)

// StatsSlot is the slot holding the serialized date-keyed stats mapping.
const StatsSlot = "fitness-stats"

// GetSlot returns the raw value of a named slot. ok is false if the slot was
// never written.
func (s *Store) GetSlot(name string) (value string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %q: %w", name, err)
	}
	return value, true, nil
}

// SetSlot replaces the whole value of a named slot.
func (s *Store) SetSlot(name, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, now,
	)
	if err != nil {
		return fmt.Errorf("set slot %q: %w", name, err)
	}
	return nil
}

// ListSlots returns the names of the slots starting with prefix, oldest first.
func (s *Store) ListSlots(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM slots WHERE substr(name, 1, ?) = ? ORDER BY updated_at, name`,
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadStats reads the whole stats mapping. An absent slot is an empty mapping.
// A slot that cannot be decoded is copied to a backup slot (see BackupPrefix)
// before the decode error is returned, so a later SaveStats cannot destroy it.
func (s *Store) LoadStats() (stats.Stats, error) {
	value, ok, err := s.GetSlot(StatsSlot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return stats.Stats{}, nil
	}
	st, err := snapshot.Decode([]byte(value))
	if err != nil {
		name, berr := s.backupSlot(value)
		if berr != nil {
			return nil, multierr.Append(err, berr)
		}
		return nil, fmt.Errorf("%w (raw value kept in slot %q)", err, name)
	}
	return st, nil
}

// BackupPrefix starts the name of every slot holding an undecodable copy of
// StatsSlot.
const BackupPrefix = StatsSlot + ".corrupt-"

// backupSlot stores value under a new backup slot unless an identical backup
// already exists, and returns the backup's name.
func (s *Store) backupSlot(value string) (string, error) {
	var name string
	err := s.db.QueryRow(
		`SELECT name FROM slots WHERE substr(name, 1, ?) = ? AND value = ? LIMIT 1`,
		len(BackupPrefix), BackupPrefix, value,
	).Scan(&name)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("find backup slot: %w", err)
	}

	ts := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	name = BackupPrefix + ts
	if err := s.SetSlot(name, value); err != nil {
		return "", err
	}
	return name, nil
}

// SaveStats writes the whole stats mapping as one unit.
func (s *Store) SaveStats(st stats.Stats) error {
	data, err := snapshot.Encode(st)
	if err != nil {
		return err
	}
	return s.SetSlot(StatsSlot, string(data))
}
