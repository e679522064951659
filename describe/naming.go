package describe

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// OrdinalStyle selects between spelled-out and numeric ordinals.
type OrdinalStyle string

const (
	OrdinalLong  OrdinalStyle = "long"  // "first", "last"
	OrdinalShort OrdinalStyle = "short" // "1st", "last"
)

var longOrdinals = map[int]string{
	1:  "first",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	-1: "last",
}

var shortOrdinals = map[int]string{
	1:  "1st",
	2:  "2nd",
	3:  "3rd",
	4:  "4th",
	5:  "5th",
	-1: "last",
}

// Ordinal returns the ordinal label for n. Values outside the mapped range
// fall back to "{n}th".
func Ordinal(n int, style OrdinalStyle) string {
	table := longOrdinals
	if style == OrdinalShort {
		table = shortOrdinals
	}
	if s, ok := table[n]; ok {
		return s
	}
	return fmt.Sprintf("%dth", n)
}

// JoinAnd joins items with commas and a plain "and" before the last item:
// "a", "a and b", "a, b and c".
func JoinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// JoinConj joins items with the given conjunction, using an Oxford comma for
// three or more items: "a, b, or c".
func JoinConj(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
}

// localeNames holds the month and weekday vocabulary for one language.
// Weekdays are Monday-first to match the 1..7 weekday encoding.
type localeNames struct {
	Months   [12]string
	Weekdays [7]string
}

// localeNamesData covers the built-in languages. Keys are base language
// subtags; region variants resolve through the language parent chain.
var localeNamesData = map[string]localeNames{
	"en": {
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Weekdays: [7]string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
	},
	"es": {
		Months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		Weekdays: [7]string{
			"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo",
		},
	},
}

// namesForLocale resolves the name table for a locale identifier, walking the
// language parent chain before falling back to English.
func namesForLocale(locale string) localeNames {
	if locale == "" {
		return localeNamesData["en"]
	}
	if names, ok := localeNamesData[locale]; ok {
		return names
	}
	if tag, err := language.Parse(locale); err == nil {
		for t := tag; t != language.Und; t = t.Parent() {
			if names, ok := localeNamesData[t.String()]; ok {
				return names
			}
		}
	} else if idx := strings.Index(locale, "-"); idx > 0 {
		if names, ok := localeNamesData[locale[:idx]]; ok {
			return names
		}
	}
	return localeNamesData["en"]
}

// MonthName returns the localized name of month (1..12). The name is resolved
// from a fixed first-of-month reference date in the target zone, so it never
// depends on an actual occurrence date or DST state.
func MonthName(tz string, month int, locale string, lowercase bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	ref := time.Date(2001, time.Month(month), 1, 12, 0, 0, 0, loadLocation(tz))
	return maybeLower(namesForLocale(locale).Months[ref.Month()-1], lowercase)
}

// WeekdayName returns the localized name of weekday (1..7, Mon..Sun),
// resolved from a fixed reference Monday offset by weekday-1 days in the
// target zone.
func WeekdayName(tz string, weekday int, locale string, lowercase bool) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	// 2001-01-01 is a Monday.
	ref := time.Date(2001, 1, 1, 12, 0, 0, 0, loadLocation(tz)).AddDate(0, 0, weekday-1)
	idx := (int(ref.Weekday()) + 6) % 7
	return maybeLower(namesForLocale(locale).Weekdays[idx], lowercase)
}

func maybeLower(s string, lowercase bool) string {
	if !lowercase {
		return s
	}
	return strings.ToLower(s)
}

// loadLocation resolves an IANA zone id, degrading to UTC rather than
// failing; the engine never errors on bad input.
func loadLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
