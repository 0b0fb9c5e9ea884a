package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownWeekday is returned when a weekday name cannot be recognised
var ErrUnknownWeekday = errors.New("unknown weekday")

// weekdayAliases maps folded (lower-case, accent-free) names to weekdays.
// Covers canonical English keys, their abbreviations and the Portuguese
// names shown in the admin UI.
var weekdayAliases = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,

	"domingo": time.Sunday, "dom": time.Sunday,
	"segunda": time.Monday, "seg": time.Monday,
	"terca": time.Tuesday, "ter": time.Tuesday,
	"quarta": time.Wednesday, "qua": time.Wednesday,
	"quinta": time.Thursday, "qui": time.Thursday,
	"sexta": time.Friday, "sex": time.Friday,
	"sabado": time.Saturday, "sab": time.Saturday,
}

// WeekdayKey returns the canonical storage key for d ("monday", ...)
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// ParseWeekday normalizes a weekday name or number into time.Weekday.
// Matching is case- and accent-insensitive, "-feira" suffixes are accepted
// and digits 0-6 follow time.Weekday numbering (0 = Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	key := foldWeekday(s)
	if key == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownWeekday)
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '6' {
		return time.Weekday(key[0] - '0'), nil
	}

	key = strings.TrimSuffix(key, "-feira")
	key = strings.TrimSuffix(key, " feira")
	key = strings.TrimSuffix(key, ".")

	if d, ok := weekdayAliases[key]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// NormalizeWorkDays converts arbitrary weekday names into sorted, de-duplicated canonical keys
func NormalizeWorkDays(days []string) ([]string, error) {
	var seen [7]bool
	for _, raw := range days {
		d, err := ParseWeekday(raw)
		if err != nil {
			return nil, err
		}
		seen[d] = true
	}

	keys := make([]string, 0, len(days))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if seen[d] {
			keys = append(keys, WeekdayKey(d))
		}
	}
	return keys, nil
}

func foldWeekday(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
