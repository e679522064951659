// Package descriptor normalizes compiled recurrence rules into the
// translation-ready form consumed by the describe package. It accepts
// rrule-go compiled options and iCalendar components; everything it emits is
// already validated enough for describe, which degrades rather than fails.
package descriptor

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"github.com/cyp0633/ruletext/describe"
)

// BuilderConfig holds configuration for a Builder.
type BuilderConfig struct {
	// Logger receives diagnostics about degraded inputs; discarded when nil.
	Logger *slog.Logger
}

// Builder converts compiled rules into describe.RuleDescriptor values.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a Builder with the given configuration.
func NewBuilder(config BuilderConfig) *Builder {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{logger: config.Logger}
}

// Meta carries the rule attributes that live outside the recurrence options
// themselves.
type Meta struct {
	Effect   describe.Effect
	TZ       string
	Unit     describe.TimeUnit
	Clamps   describe.Clamps
	Duration describe.Duration
}

// Span builds a recurrence-less descriptor covering one continuous interval;
// only the clamps bound it.
func (b *Builder) Span(meta Meta) describe.RuleDescriptor {
	return describe.RuleDescriptor{
		Kind:   describe.KindSpan,
		Effect: meta.Effect,
		TZ:     meta.TZ,
		Unit:   meta.Unit,
		Clamps: meta.Clamps,
	}
}

// FromROption builds a recurring descriptor from a compiled rrule option set.
// Weekday codes move from rrule-go's Mon=0 encoding to the engine's
// Mon=1..Sun=7, and embedded weekday positions become explicit options.
func (b *Builder) FromROption(opt *rrule.ROption, meta Meta) describe.RuleDescriptor {
	d := describe.RuleDescriptor{
		Kind:      describe.KindRecur,
		Effect:    meta.Effect,
		TZ:        meta.TZ,
		Unit:      meta.Unit,
		Clamps:    meta.Clamps,
		Freq:      frequencyName(opt.Freq, b.logger),
		Interval:  opt.Interval,
		Duration:  meta.Duration,
		Months:    append([]int(nil), opt.Bymonth...),
		MonthDays: append([]int(nil), opt.Bymonthday...),
		YearDays:  append([]int(nil), opt.Byyearday...),
		WeekNos:   append([]int(nil), opt.Byweekno...),
		Hours:     append([]int(nil), opt.Byhour...),
		Minutes:   append([]int(nil), opt.Byminute...),
		Seconds:   append([]int(nil), opt.Bysecond...),
		SetPos:    append([]int(nil), opt.Bysetpos...),
		WeekStart: opt.Wkst.Day() + 1,
	}
	if d.Interval < 1 {
		d.Interval = 1
	}
	for _, wd := range opt.Byweekday {
		w := describe.Weekday{Day: wd.Day() + 1}
		if n := wd.N(); n != 0 {
			w.Nth = mo.Some(n)
		}
		d.Weekdays = append(d.Weekdays, w)
	}
	if opt.Count > 0 {
		d.Count = mo.Some(opt.Count)
	}
	if !opt.Until.IsZero() {
		d.Until = mo.Some(epochIn(opt.Until, meta.Unit))
	}
	return d
}

// FromRRuleString parses an RFC 5545 RRULE value (the part after "RRULE:")
// and builds a descriptor from it.
func (b *Builder) FromRRuleString(s string, meta Meta) (describe.RuleDescriptor, error) {
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return describe.RuleDescriptor{}, fmt.Errorf("failed to parse RRULE %q: %w", s, err)
	}
	return b.FromROption(opt, meta), nil
}

// frequencyName maps rrule-go frequency codes to the engine's enum. Unknown
// codes are logged and passed through empty; the engine renders its bare
// base clause for them.
func frequencyName(f rrule.Frequency, logger *slog.Logger) describe.Frequency {
	switch f {
	case rrule.YEARLY:
		return describe.Yearly
	case rrule.MONTHLY:
		return describe.Monthly
	case rrule.WEEKLY:
		return describe.Weekly
	case rrule.DAILY:
		return describe.Daily
	case rrule.HOURLY:
		return describe.Hourly
	case rrule.MINUTELY:
		return describe.Minutely
	case rrule.SECONDLY:
		return describe.Secondly
	}
	logger.Debug("unknown frequency code", "freq", int(f))
	return ""
}

// epochIn converts a wall-clock time to an epoch in the descriptor's unit.
func epochIn(t time.Time, unit describe.TimeUnit) int64 {
	if unit == describe.UnitSeconds {
		return t.Unix()
	}
	return t.UnixMilli()
}
