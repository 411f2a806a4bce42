package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "schedulehq-backend/internal/errors"
)

// TimeOfDay is a clock time within a day ("HH:mm" on the wire).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:mm" or "HH"; minutes default to 0.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, apperrors.ErrInvalidTimeOfDay
	}

	parts := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeOfDay, s)
	}

	minute := 0
	if len(parts) == 2 && parts[1] != "" {
		minute, err = strconv.Atoi(parts[1])
		if err != nil || minute < 0 || minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeOfDay, s)
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time of day as "HH:mm"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the minute offset from midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On places the time of day on the given calendar date
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// DateOf truncates an instant to its calendar date (midnight, same location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) overlap under
// open-interval comparison. Intervals that merely touch at an endpoint do
// not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether [innerStart, innerEnd] lies fully inside
// [outerStart, outerEnd].
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}

// BusinessClock maps instants to business days. The working day runs past
// midnight (roughly 04:30-01:59), so instants with an hour below the
// boundary belong to the previous calendar date's schedule.
type BusinessClock struct {
	boundaryHour int
}

// NewBusinessClock creates a business clock with the given rollover hour
func NewBusinessClock(boundaryHour int) *BusinessClock {
	return &BusinessClock{boundaryHour: boundaryHour}
}

// BusinessDayOf returns the calendar date of the business day the instant
// belongs to.
func (c *BusinessClock) BusinessDayOf(t time.Time) time.Time {
	if t.Hour() < c.boundaryHour {
		return DateOf(t.AddDate(0, 0, -1))
	}
	return DateOf(t)
}

// Canonical day-off window: 00:00 through 23:59 on the same date. Legacy
// data also used 04:00 through 03:59 the next day, occasionally shifted an
// hour by a daylight-saving transition; IsDayOffWindow recognizes those on
// read but they are never written.

// OffWindow returns the canonical all-day off window for a date
func OffWindow(date time.Time) (time.Time, time.Time) {
	day := DateOf(date)
	return day, day.Add(23*time.Hour + 59*time.Minute)
}

// IsDayOffWindow reports whether [start, end] is a recognized all-day off
// window, canonical or legacy.
func IsDayOffWindow(start, end time.Time) bool {
	// Canonical: 00:00 -> 23:59 same day.
	if start.Hour() == 0 && start.Minute() == 0 &&
		end.Hour() == 23 && end.Minute() == 59 &&
		DateOf(start).Equal(DateOf(end)) {
		return true
	}
	// Legacy: 04:00 -> 03:59 next day, tolerating a one hour DST shift on
	// either endpoint.
	if !DateOf(end).Equal(DateOf(start).AddDate(0, 0, 1)) {
		return false
	}
	startOK := start.Minute() == 0 && start.Hour() >= 3 && start.Hour() <= 5
	endOK := end.Minute() == 59 && end.Hour() >= 2 && end.Hour() <= 4
	return startOK && endOK
}
