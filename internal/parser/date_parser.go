package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/tdo/internal/models"
)

// DateLayout is the calendar-date form used for storage and ISO input
const DateLayout = "2006-01-02"

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ResolveDate turns a date expression into a calendar date relative to now.
// Supported formats:
// - YYYY-MM-DD (e.g., "2025-03-01")
// - today, tomorrow
// - a weekday name (e.g., "friday"), the next occurrence strictly after today
// - next-<weekday> (e.g., "next-friday"), at least 7 days out
// - next-week
//
// The result is midnight of that date in now's location.
func ResolveDate(input string, now time.Time) (time.Time, error) {
	expr := strings.ToLower(strings.TrimSpace(input))
	today := StartOfDay(now)

	if isoDateRegex.MatchString(expr) {
		// ParseInLocation rejects out-of-range months and days (including Feb 30).
		d, err := time.ParseInLocation(DateLayout, expr, now.Location())
		if err != nil {
			return time.Time{}, models.ErrInvalidDate(input)
		}
		return d, nil
	}

	expr = strings.Join(strings.Fields(expr), "-")

	switch expr {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if wd, ok := weekdays[expr]; ok {
		return today.AddDate(0, 0, daysUntil(today.Weekday(), wd)), nil
	}

	if rest, ok := strings.CutPrefix(expr, "next-"); ok {
		if wd, ok := weekdays[rest]; ok {
			days := daysUntil(today.Weekday(), wd)
			if days < 7 {
				days += 7
			}
			return today.AddDate(0, 0, days), nil
		}
	}

	return time.Time{}, models.ErrInvalidDate(input)
}

// ResolveDateString resolves input and formats it with DateLayout.
func ResolveDateString(input string, now time.Time) (string, error) {
	d, err := ResolveDate(input, now)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// daysUntil counts days from one weekday to the next occurrence of another,
// in 1..7: the same weekday wraps to a full week.
func daysUntil(from, to time.Weekday) int {
	days := (int(to) - int(from) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDateHeader labels an upcoming date group.
func FormatDateHeader(date string, now time.Time) string {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return date
	}
	today := StartOfDay(now)
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case d.Year() != today.Year():
		return d.Format("Monday, Jan 2 2006")
	default:
		return d.Format("Monday, Jan 2")
	}
}
