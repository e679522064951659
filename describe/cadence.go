package describe

import "fmt"

// everyWithInterval builds the base clause: "every week" for interval 1,
// "every 2 weeks" otherwise.
func everyWithInterval(lex Lexicon, freq Frequency, interval int) string {
	noun := lex.Noun[freq]
	if noun == "" {
		noun = string(freq)
	}
	if interval <= 1 {
		return "every " + noun
	}
	return fmt.Sprintf("every %d %s", interval, lex.Pluralize(noun, interval))
}

// buildCadence produces the cadence clause for a recur descriptor, limits
// suffix included. Every frequency branch is complete on its own; a branch
// with no matching by-field data leaves the base clause untouched.
func buildCadence(d RuleDescriptor, cfg Config, lex Lexicon) string {
	clause := everyWithInterval(lex, d.Freq, d.Interval)
	lower := cfg.Lowercase.OrElse(true)

	switch d.Freq {
	case Daily:
		if t, ok := timeClause(d, cfg); ok {
			clause += t
		}
	case Weekly:
		if len(d.Weekdays) > 0 {
			clause += " on " + JoinAnd(weekdayNameList(d, cfg, lower))
			if t, ok := timeClause(d, cfg); ok {
				clause += t
			}
		}
	case Yearly:
		if detail := yearlyDetail(d, cfg, lower); detail != "" {
			clause += detail
			if t, ok := timeClause(d, cfg); ok {
				clause += t
			}
		}
	case Monthly:
		if detail := dayDetail(d, cfg, lower); detail != "" {
			clause += detail
			if t, ok := timeClause(d, cfg); ok {
				clause += t
			}
		}
	}
	return appendLimits(clause, d, cfg)
}

// yearlyDetail renders the month/day portion of a yearly clause, with a
// leading space, or "" when the descriptor carries no usable by-fields.
func yearlyDetail(d RuleDescriptor, cfg Config, lower bool) string {
	switch {
	case len(d.Months) == 1:
		month := MonthName(d.TZ, d.Months[0], cfg.Locale, lower)
		if len(d.MonthDays) == 1 {
			return fmt.Sprintf(" on %s %d", month, d.MonthDays[0])
		}
		if detail := dayDetail(d, cfg, lower); detail != "" {
			return " in " + month + detail
		}
		return " in " + month
	case len(d.Months) > 1:
		names := make([]string, 0, len(d.Months))
		for _, m := range d.Months {
			names = append(names, MonthName(d.TZ, m, cfg.Locale, lower))
		}
		return " in " + JoinConj(names, "or") + dayDetail(d, cfg, lower)
	case len(d.Weekdays) > 0:
		return dayDetail(d, cfg, lower)
	}
	return ""
}

// dayDetail renders the day-of-month or weekday portion shared by the
// monthly branch and the yearly sub-branches, with a leading space, or ""
// when neither by-field is set. Month days always use short ordinals.
func dayDetail(d RuleDescriptor, cfg Config, lower bool) string {
	switch {
	case len(d.MonthDays) == 1:
		return " on the " + Ordinal(d.MonthDays[0], OrdinalShort)
	case len(d.MonthDays) > 1:
		ords := make([]string, 0, len(d.MonthDays))
		for _, day := range d.MonthDays {
			ords = append(ords, Ordinal(day, OrdinalShort))
		}
		return " on the " + JoinAnd(ords)
	case len(d.Weekdays) > 0:
		return weekdayClause(d, cfg, lower)
	}
	return ""
}

// weekdayClause renders the weekday portion. When ordinal positions exist —
// from the setpos array, from positions embedded on the weekdays themselves,
// or both — the clause becomes "on the <positions> <weekdays>" with "or"
// joins; otherwise a plain "on <weekdays>" with "and".
func weekdayClause(d RuleDescriptor, cfg Config, lower bool) string {
	names := weekdayNameList(d, cfg, lower)
	positions := positionUnion(d)
	if len(positions) == 0 {
		return " on " + JoinAnd(names)
	}
	ords := make([]string, 0, len(positions))
	for _, p := range positions {
		ords = append(ords, Ordinal(p, cfg.Ordinals))
	}
	return " on the " + JoinConj(ords, "or") + " " + JoinConj(names, "or")
}

// positionUnion collects ordinal positions from both sources — the setpos
// array and each weekday's embedded nth — as a deduplicated union in
// encounter order. Neither source overrides the other.
func positionUnion(d RuleDescriptor) []int {
	seen := make(map[int]struct{}, len(d.SetPos)+len(d.Weekdays))
	var union []int
	add := func(n int) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		union = append(union, n)
	}
	for _, p := range d.SetPos {
		add(p)
	}
	for _, wd := range d.Weekdays {
		if n, ok := wd.Nth.Get(); ok && n != 0 {
			add(n)
		}
	}
	return union
}

func weekdayNameList(d RuleDescriptor, cfg Config, lower bool) []string {
	names := make([]string, 0, len(d.Weekdays))
	for _, wd := range d.Weekdays {
		names = append(names, WeekdayName(d.TZ, wd.Day, cfg.Locale, lower))
	}
	return names
}

func timeClause(d RuleDescriptor, cfg Config) (string, bool) {
	s, ok := FormatLocalTimeList(d.TZ, d.Hours, d.Minutes, d.Seconds, cfg.Time.Format, cfg.Time.HourCycle)
	if !ok {
		return "", false
	}
	return " at " + s, true
}
