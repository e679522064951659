package describe

import "fmt"

// appendLimits applies the configured limits mode to a finished cadence
// clause. Dates render year-month-day in the rule's zone; in the combined
// mode the date phrases come before the count phrase.
func appendLimits(clause string, d RuleDescriptor, cfg Config) string {
	withDates := cfg.Limits == LimitsDateOnly || cfg.Limits == LimitsDateAndCount
	withCount := cfg.Limits == LimitsCountOnly || cfg.Limits == LimitsDateAndCount

	if withDates {
		loc := loadLocation(d.TZ)
		if start, ok := d.Clamps.Starts.Get(); ok {
			clause += " from " + d.Unit.Time(start, loc).Format("2006-01-02")
		}
		if until, ok := d.Until.Get(); ok {
			clause += " until " + d.Unit.Time(until, loc).Format("2006-01-02")
		}
	}
	if withCount {
		if count, ok := d.Count.Get(); ok && count > 0 {
			clause += fmt.Sprintf(" for %d %s", count, defaultPluralize("occurrence", count))
		}
	}
	return clause
}
