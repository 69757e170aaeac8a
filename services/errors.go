package services

import (
	"errors"
	"time"
)

var (
	// ErrNotFound covers any record lookup that misses or is owned by a
	// different user; controllers map it to 404.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidDate is returned for date strings that are not YYYY-MM-DD;
	// controllers map it to 400. Distinct from an empty result set.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInvalidAmount rejects non-positive amounts/durations/weights;
	// controllers map it to 400.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNoCandidates rejects meal assembly with zero food candidates. The
	// recognizer never produces an empty list, so this only fires on manual
	// submissions; it keeps the confidence mean well-defined.
	ErrNoCandidates = errors.New("no food candidates to assemble")
)

const dateLayout = "2006-01-02"

// DayBounds resolves a YYYY-MM-DD string to the inclusive window
// [00:00:00, 23:59:59.999999]. Timestamps are stored and bucketed naive-UTC;
// the user's stored timezone is deliberately not consulted.
func DayBounds(dateStr string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Microsecond)
	return start, end, nil
}

// RangeBounds resolves [start 00:00:00, end 23:59:59.999999] for a date range.
func RangeBounds(startStr, endStr string) (time.Time, time.Time, error) {
	start, _, err := DayBounds(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end, err := DayBounds(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
