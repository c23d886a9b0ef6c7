package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/tracker"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewDiet
	viewExercise
	viewSleep
	viewSettings
)

var viewNames = []string{"Dashboard", "Diet", "Exercise", "Sleep", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type dayChangedMsg struct {
	key string
}

// --- Helpers ---

// mutationStatus reports text, or the persistence failure of the last write.
func mutationStatus(s *tracker.Session, text string) tea.Cmd {
	msg := statusMsg{text: text}
	if err := s.LastPersistError(); err != nil {
		msg = statusMsg{text: fmt.Sprintf("Not saved: %v", err), isError: true}
	}
	return func() tea.Msg { return msg }
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// parseCount reads a non-negative whole number. Blank input is zero.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("enter a whole number")
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func validatePositiveInt(s string) error {
	n, err := parseCount(s)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if f <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func validateTimeOfDay(s string) error {
	_, err := stats.ParseTimeOfDay(strings.TrimSpace(s))
	if err != nil {
		return errors.New("use HH:MM")
	}
	return nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
