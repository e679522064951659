/*
Package describe renders recurrence-rule descriptors as deterministic English
sentences for display to humans.

# Basic Usage

Build a RuleDescriptor (usually through the descriptor package) and call
Describe:

	d := describe.RuleDescriptor{
		Kind:     describe.KindRecur,
		Effect:   describe.EffectActive,
		TZ:       "UTC",
		Freq:     describe.Weekly,
		Interval: 2,
		Duration: describe.Duration{Hours: 1},
		Weekdays: []describe.Weekday{{Day: 1}, {Day: 3}},
		Hours:    []int{17},
	}
	s := describe.Describe(d, describe.DefaultConfig)
	// "Active for 1 hour every 2 weeks on monday and wednesday at 17:00"

# Configuration

Config controls limits phrasing, time-of-day format, locale, ordinal style,
timezone and bounds suffixes, and lexicon overrides. The zero value selects
every default.

# Custom strategies

The whole sentence composition is pluggable through the Translator interface;
set Config.Translator to replace the built-in English strategy.

Everything in this package is a pure function of its arguments plus the
read-only default lexicon, so concurrent use needs no synchronization.
*/
package describe
