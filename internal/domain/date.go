package domain

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate парсит дату заявки.
// Принимается "YYYY-MM-DD", а также RFC 3339 (так сериализует дату браузер);
// во втором случае момент переводится в loc и берется календарная дата в loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if date, err := time.ParseInLocation(DateFormat, value, loc); err == nil {
		return date, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// StartOfDay возвращает полночь того же дня
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast true, если дата строго раньше полуночи текущего дня
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(StartOfDay(now))
}

// FormatDisplayDate форматирует дату как "October 17th, 2026"
func FormatDisplayDate(date time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", date.Month(), date.Day(), ordinalSuffix(date.Day()), date.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
