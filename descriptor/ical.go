package descriptor

import (
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/samber/mo"

	"github.com/cyp0633/ruletext/describe"
)

// FromComponent builds a descriptor from an iCalendar event or todo
// component. A component without an RRULE becomes a span descriptor clamped
// to its start and end; a recurring one gets its occurrence duration from
// DTSTART/DTEND and its start clamp from DTSTART.
func (b *Builder) FromComponent(comp *ical.Component, effect describe.Effect, unit describe.TimeUnit) (describe.RuleDescriptor, error) {
	meta := Meta{
		Effect: effect,
		TZ:     componentZone(comp),
		Unit:   unit,
	}
	start, end, hasTime := componentTimes(comp, b.logger)

	rruleProp := comp.Props.Get(ical.PropRecurrenceRule)
	if rruleProp == nil || rruleProp.Value == "" {
		if hasTime {
			meta.Clamps.Starts = mo.Some(epochIn(start, unit))
			meta.Clamps.Ends = mo.Some(epochIn(end, unit))
		}
		return b.Span(meta), nil
	}

	if hasTime {
		meta.Clamps.Starts = mo.Some(epochIn(start, unit))
		meta.Duration = splitDuration(end.Sub(start))
	}
	return b.FromRRuleString(rruleProp.Value, meta)
}

// componentZone reads the zone id from the DTSTART TZID parameter, falling
// back to UTC.
func componentZone(comp *ical.Component) string {
	if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
		if tzid := prop.Params.Get("TZID"); tzid != "" {
			return tzid
		}
	}
	return "UTC"
}

// componentTimes resolves the start and end of one occurrence from
// DTSTART plus DTEND, DURATION, or the defaults: one day for all-day
// (date-valued) starts, instantaneous otherwise. For VTODO a DUE later than
// the computed end extends it.
func componentTimes(comp *ical.Component, logger *slog.Logger) (start, end time.Time, ok bool) {
	if !hasProp(comp, ical.PropDateTimeStart) {
		if comp.Name == ical.CompToDo && hasProp(comp, ical.PropDue) {
			if due, dueErr := comp.Props.DateTime(ical.PropDue, nil); dueErr == nil {
				return due, due, true
			}
		}
		return time.Time{}, time.Time{}, false
	}
	start, err := comp.Props.DateTime(ical.PropDateTimeStart, nil)
	if err != nil {
		logger.Debug("unreadable DTSTART", "error", err)
		return time.Time{}, time.Time{}, false
	}
	ok = true

	switch {
	case hasProp(comp, ical.PropDateTimeEnd):
		end, err = comp.Props.DateTime(ical.PropDateTimeEnd, nil)
		if err != nil {
			logger.Debug("unreadable DTEND, using start", "error", err)
			end = start
		}
	case hasProp(comp, ical.PropDuration):
		dur, durErr := comp.Props.Get(ical.PropDuration).Duration()
		if durErr != nil {
			logger.Debug("unreadable DURATION, using default", "error", durErr)
			end = defaultEnd(start)
		} else {
			end = start.Add(dur)
		}
	default:
		end = defaultEnd(start)
	}

	if comp.Name == ical.CompToDo {
		if due, dueErr := comp.Props.DateTime(ical.PropDue, nil); dueErr == nil && due.After(end) {
			end = due
		}
	}
	return start, end, ok
}

func hasProp(comp *ical.Component, name string) bool {
	prop := comp.Props.Get(name)
	return prop != nil && prop.Value != ""
}

// defaultEnd applies the iCalendar default duration: one day for date-valued
// (midnight) starts, zero otherwise.
func defaultEnd(start time.Time) time.Time {
	if start.Hour() == 0 && start.Minute() == 0 && start.Second() == 0 {
		return start.AddDate(0, 0, 1)
	}
	return start
}

// splitDuration decomposes an occurrence length into the descriptor's
// calendar components. Weeks are the largest unit an iCalendar DURATION can
// carry, so years and months stay zero here.
func splitDuration(d time.Duration) describe.Duration {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	var out describe.Duration
	out.Weeks = secs / (7 * 86400)
	secs %= 7 * 86400
	out.Days = secs / 86400
	secs %= 86400
	out.Hours = secs / 3600
	secs %= 3600
	out.Minutes = secs / 60
	out.Seconds = secs % 60
	return out
}
