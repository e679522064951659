package describe

import (
	"fmt"
	"strings"
	"time"
)

// Translator turns a descriptor into a complete sentence. Implementations
// own the entire composition, effect and duration phrasing included, so an
// alternate language or style replaces the built-in strategy wholesale.
// Implementations must be pure: no mutation of the descriptor, no shared
// state.
type Translator interface {
	Translate(d RuleDescriptor, cfg Config) string
}

// Describe renders a descriptor as an English sentence, or with whatever
// translator cfg selects. This is the only place defaults are resolved;
// strategies receive the already-resolved config.
func Describe(d RuleDescriptor, cfg Config) string {
	resolved := cfg.withDefaults()
	return resolved.Translator.Translate(d, resolved)
}

// English is the built-in sentence strategy.
type English struct{}

// Translate assembles "<Effect> continuously" for spans and "<Effect> for
// <duration> <cadence>" for recurring rules, plus the optional timezone and
// bounds suffixes.
func (English) Translate(d RuleDescriptor, cfg Config) string {
	var b strings.Builder
	b.WriteString(d.Effect.Label())
	if d.Kind == KindSpan {
		b.WriteString(" continuously")
	} else {
		lex := MergeLexicon(cfg.Lexicon)
		b.WriteString(" for ")
		b.WriteString(durationText(d.Duration, lex))
		b.WriteString(" ")
		b.WriteString(buildCadence(d, cfg, lex))
	}
	if cfg.ShowTimezone {
		label := d.TZ
		if cfg.TimezoneLabel != nil {
			label = cfg.TimezoneLabel(d.TZ)
		}
		b.WriteString(" (timezone " + label + ")")
	}
	if cfg.ShowBounds {
		b.WriteString(boundsSuffix(d, cfg))
	}
	return b.String()
}

// boundsSuffix renders the clamp epochs as " from <bound> until <bound>",
// skipping absent sides. The default layout is RFC 3339 in the rule's zone,
// which carries no sub-second digits.
func boundsSuffix(d RuleDescriptor, cfg Config) string {
	layout := cfg.BoundsFormat
	if layout == "" {
		layout = time.RFC3339
	}
	loc := loadLocation(d.TZ)
	var b strings.Builder
	if start, ok := d.Clamps.Starts.Get(); ok {
		b.WriteString(" from " + d.Unit.Time(start, loc).Format(layout))
	}
	if end, ok := d.Clamps.Ends.Get(); ok {
		b.WriteString(" until " + d.Unit.Time(end, loc).Format(layout))
	}
	return b.String()
}

// durationText renders the non-zero duration components in fixed order,
// space-joined: "1 day 4 hours". An all-zero duration yields "", which
// leaves the sentence with a dangling "for"; that artifact is longstanding
// caller-visible behavior and is kept as is.
func durationText(d Duration, lex Lexicon) string {
	components := []struct {
		n    int
		unit string
	}{
		{d.Years, "year"},
		{d.Months, "month"},
		{d.Weeks, "week"},
		{d.Days, "day"},
		{d.Hours, "hour"},
		{d.Minutes, "minute"},
		{d.Seconds, "second"},
	}
	var parts []string
	for _, c := range components {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, lex.Pluralize(c.unit, c.n)))
		}
	}
	return strings.Join(parts, " ")
}
