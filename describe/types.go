package describe

import (
	"time"

	"github.com/samber/mo"
)

// Effect says whether a rule grants coverage or blocks it.
type Effect string

const (
	EffectActive   Effect = "active"
	EffectBlackout Effect = "blackout"
)

// Label returns the sentence-leading form of the effect.
func (e Effect) Label() string {
	if e == EffectBlackout {
		return "Blackout"
	}
	return "Active"
}

// Frequency enumerates the recurrence frequencies understood by the engine.
// Anything outside this set degrades to the bare "every ..." clause.
type Frequency string

const (
	Yearly   Frequency = "yearly"
	Monthly  Frequency = "monthly"
	Weekly   Frequency = "weekly"
	Daily    Frequency = "daily"
	Hourly   Frequency = "hourly"
	Minutely Frequency = "minutely"
	Secondly Frequency = "secondly"
)

// TimeUnit is the resolution of the epoch values carried by a descriptor
// (clamps and until share it).
type TimeUnit string

const (
	UnitMilliseconds TimeUnit = "milliseconds"
	UnitSeconds      TimeUnit = "seconds"
)

// Time converts an epoch in this unit to a wall-clock time in loc.
// An unset unit is read as milliseconds.
func (u TimeUnit) Time(epoch int64, loc *time.Location) time.Time {
	if u == UnitSeconds {
		return time.Unix(epoch, 0).In(loc)
	}
	return time.UnixMilli(epoch).In(loc)
}

// Kind discriminates the two descriptor shapes.
type Kind string

const (
	KindSpan  Kind = "span"  // one continuous interval, bounded only by clamps
	KindRecur Kind = "recur" // repeating pattern driven by Freq and the by-fields
)

// Weekday is a day-of-week constraint, Mon=1..Sun=7, with an optional
// embedded ordinal position (-1 = last).
type Weekday struct {
	Day int
	Nth mo.Option[int]
}

// Clamps optionally bounds a rule's applicability. Epochs are in the
// descriptor's unit.
type Clamps struct {
	Starts mo.Option[int64]
	Ends   mo.Option[int64]
}

// Duration holds the length of each occurrence, split into calendar
// components. All components are non-negative; absent means zero.
type Duration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// RuleDescriptor is the normalized, translation-ready representation of a
// compiled recurrence rule. Translation never mutates it; build one per rule
// and reuse it freely across goroutines.
type RuleDescriptor struct {
	Kind   Kind
	Effect Effect
	TZ     string   // IANA zone identifier, e.g. "Asia/Singapore"
	Unit   TimeUnit // resolution of Clamps and Until
	Clamps Clamps

	// Recurrence fields, meaningful only when Kind == KindRecur.
	Freq      Frequency
	Interval  int // >= 1, validated upstream
	Duration  Duration
	Months    []int // 1..12
	MonthDays []int // signed day-of-month
	YearDays  []int
	WeekNos   []int
	Weekdays  []Weekday
	Hours     []int
	Minutes   []int
	Seconds   []int
	SetPos    []int // signed positions applied across Weekdays
	WeekStart int   // 1..7 Mon..Sun
	Count     mo.Option[int]
	Until     mo.Option[int64]
}
