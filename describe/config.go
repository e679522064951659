package describe

import "github.com/samber/mo"

// LimitsMode selects which bound phrases the cadence clause carries.
type LimitsMode string

const (
	LimitsNone         LimitsMode = "none"
	LimitsDateOnly     LimitsMode = "dateOnly"     // "from <date>", "until <date>"
	LimitsCountOnly    LimitsMode = "countOnly"    // "for N occurrence(s)"
	LimitsDateAndCount LimitsMode = "dateAndCount" // both, dates first
)

// TimeConfig controls time-of-day rendering.
type TimeConfig struct {
	Format    TimeFormat // default TimeHM
	HourCycle HourCycle  // default Hour23
}

// Config controls how a descriptor is rendered. The zero value is usable;
// every unset field is resolved to its default once, in withDefaults, before
// translation begins.
type Config struct {
	// Translator is the sentence strategy; the built-in English one when nil.
	Translator Translator

	// ShowTimezone appends " (timezone <label>)". TimezoneLabel formats the
	// label; the raw zone id is used when nil.
	ShowTimezone  bool
	TimezoneLabel func(tz string) string

	// ShowBounds appends " from <bound> until <bound>" from the clamps.
	// BoundsFormat is a time layout; RFC 3339 with sub-second precision
	// suppressed when empty.
	ShowBounds   bool
	BoundsFormat string

	// Limits selects the cadence-clause bound phrases, default LimitsNone.
	Limits LimitsMode

	Time TimeConfig

	// Locale selects the month/weekday name language, e.g. "es" or "es-MX".
	// English when empty or unsupported.
	Locale string

	// Ordinals is the style for weekday positions, default OrdinalLong.
	// Month-day ordinals are always short.
	Ordinals OrdinalStyle

	// Lowercase lowercases month and weekday names, default true.
	Lowercase mo.Option[bool]

	// Lexicon is a partial override merged over the default English table.
	Lexicon *Lexicon
}

// DefaultConfig renders with the built-in English translator and every
// default above.
var DefaultConfig = Config{}

// withDefaults is the single merge point for config defaults. Strategies and
// helpers downstream assume a resolved config and never re-default.
func (c Config) withDefaults() Config {
	if c.Translator == nil {
		c.Translator = English{}
	}
	if c.Limits == "" {
		c.Limits = LimitsNone
	}
	if c.Time.Format == "" {
		c.Time.Format = TimeHM
	}
	if c.Time.HourCycle == "" {
		c.Time.HourCycle = Hour23
	}
	if c.Ordinals == "" {
		c.Ordinals = OrdinalLong
	}
	if c.Lowercase.IsAbsent() {
		c.Lowercase = mo.Some(true)
	}
	return c
}
