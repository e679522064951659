package describe

import (
	"fmt"
	"time"
)

// TimeFormat controls whether seconds appear in rendered clock strings.
type TimeFormat string

const (
	TimeHM   TimeFormat = "hm"   // hours and minutes only
	TimeHMS  TimeFormat = "hms"  // always include seconds
	TimeAuto TimeFormat = "auto" // include seconds only when non-zero
)

// HourCycle selects 24-hour or 12-hour clock rendering.
type HourCycle string

const (
	Hour23 HourCycle = "h23" // "17:00"
	Hour12 HourCycle = "h12" // "5:00 pm"
)

// FormatLocalTime renders the first value of each by-field list as a short
// clock string in the rule's zone. ok is false when no hour is present, in
// which case no "at ..." clause should be produced.
func FormatLocalTime(tz string, hours, minutes, seconds []int, format TimeFormat, cycle HourCycle) (string, bool) {
	if len(hours) == 0 {
		return "", false
	}
	return formatClock(tz, hours[0], firstOr(minutes, 0), firstOr(seconds, 0), format, cycle), true
}

// FormatLocalTimeList extends FormatLocalTime: when exactly one of the hour
// and minute lists carries multiple values while the other has at most one,
// each value is rendered independently and the results joined with "and"
// ("at 9:00 and 17:00"). Any other shape degrades to the single-time form.
func FormatLocalTimeList(tz string, hours, minutes, seconds []int, format TimeFormat, cycle HourCycle) (string, bool) {
	if len(hours) == 0 {
		return "", false
	}
	multiHours := len(hours) > 1
	multiMinutes := len(minutes) > 1
	switch {
	case multiHours && !multiMinutes:
		m := firstOr(minutes, 0)
		s := firstOr(seconds, 0)
		parts := make([]string, 0, len(hours))
		for _, h := range hours {
			parts = append(parts, formatClock(tz, h, m, s, format, cycle))
		}
		return JoinAnd(parts), true
	case multiMinutes && !multiHours:
		h := hours[0]
		s := firstOr(seconds, 0)
		parts := make([]string, 0, len(minutes))
		for _, m := range minutes {
			parts = append(parts, formatClock(tz, h, m, s, format, cycle))
		}
		return JoinAnd(parts), true
	}
	return FormatLocalTime(tz, hours, minutes, seconds, format, cycle)
}

// formatClock builds the wall-clock value in the target zone and renders it.
// The hour never carries a leading zero.
func formatClock(tz string, h, m, s int, format TimeFormat, cycle HourCycle) string {
	t := time.Date(2001, 1, 1, h, m, s, 0, loadLocation(tz))
	withSeconds := format == TimeHMS || (format == TimeAuto && t.Second() != 0)
	if cycle == Hour12 {
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		suffix := "am"
		if t.Hour() >= 12 {
			suffix = "pm"
		}
		if withSeconds {
			return fmt.Sprintf("%d:%02d:%02d %s", hour, t.Minute(), t.Second(), suffix)
		}
		return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
	}
	if withSeconds {
		return fmt.Sprintf("%d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

func firstOr(values []int, fallback int) int {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
