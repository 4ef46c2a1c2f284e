package feed

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"cie-dashboard/pkg/calendar"
)

const maxOccurrencesPerEvent = 5000

// Expand resolves events into dated occurrences inside [from, to].
// Recurring events are expanded with their RRULE minus EXDATEs, and
// RECURRENCE-ID overrides replace the instance they name. All-day events
// covering several days yield one occurrence per day. Events whose RRULE
// cannot be parsed are reported in bad and skipped.
func Expand(events []VEvent, from, to calendar.Date, loc *time.Location) (out []Occurrence, bad []error) {
	if loc == nil {
		loc = time.UTC
	}
	if to.Before(from) {
		return nil, nil
	}

	overrides := make(map[string][]VEvent)
	var bases []VEvent
	for _, ev := range events {
		if ev.RecurrenceID != nil {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		bases = append(bases, ev)
	}

	for _, ev := range bases {
		if ev.RRule == "" {
			out = append(out, occurrencesOf(ev, from, to, loc)...)
			continue
		}
		occ, err := expandRecurring(ev, overrides[ev.UID], from, to, loc)
		if err != nil {
			bad = append(bad, fmt.Errorf("uid %s: %w", ev.UID, err))
			continue
		}
		out = append(out, occ...)
	}
	return out, bad
}

func expandRecurring(ev VEvent, overrides []VEvent, from, to calendar.Date, loc *time.Location) ([]Occurrence, error) {
	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return nil, err
	}

	var (
		dtStart    time.Time
		rangeStart time.Time
		rangeEnd   time.Time
		span       int
	)
	if ev.AllDay {
		// All-day recurrences run on floating dates, expanded in UTC.
		span = ev.EndDate.DaysSince(ev.StartDate)
		dtStart = ev.StartDate.Time(time.UTC)
		rangeStart = from.AddDays(-(span - 1)).Time(time.UTC)
		rangeEnd = to.Time(time.UTC)
	} else {
		dtStart = ev.Start
		rangeStart = from.Time(loc)
		rangeEnd = to.AddDays(1).Time(loc).Add(-time.Nanosecond)
	}
	r.DTStart(dtStart)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		if ev.AllDay {
			set.ExDate(calendar.DateOf(ex).Time(time.UTC))
			continue
		}
		set.ExDate(ex.In(dtStart.Location()))
	}

	times := set.Between(rangeStart, rangeEnd, true)
	if len(times) > maxOccurrencesPerEvent {
		times = times[:maxOccurrencesPerEvent]
	}

	var out []Occurrence
	for _, t := range times {
		if o, ok := findOverride(overrides, t); ok {
			out = append(out, occurrencesOf(o, from, to, loc)...)
			continue
		}

		inst := ev
		inst.RRule = ""
		if ev.AllDay {
			inst.StartDate = calendar.DateOf(t)
			inst.EndDate = inst.StartDate.AddDays(span)
		} else {
			inst.Start = t.In(loc)
			inst.End = inst.Start.Add(ev.End.Sub(ev.Start))
		}
		out = append(out, occurrencesOf(inst, from, to, loc)...)
	}
	return out, nil
}

func findOverride(overrides []VEvent, start time.Time) (VEvent, bool) {
	for _, o := range overrides {
		if o.RecurrenceID.Equal(start) {
			return o, true
		}
	}
	return VEvent{}, false
}

// occurrencesOf places a single, non-recurring instance.
func occurrencesOf(ev VEvent, from, to calendar.Date, loc *time.Location) []Occurrence {
	mk := func(d calendar.Date) Occurrence {
		return Occurrence{UID: ev.UID, Date: d, Summary: ev.Summary, Description: ev.Description}
	}

	if !ev.AllDay {
		d := calendar.DateOf(ev.Start.In(loc))
		if !d.Between(from, to) {
			return nil
		}
		o := mk(d)
		o.At = ev.Start.In(loc)
		return []Occurrence{o}
	}

	var out []Occurrence
	for d := ev.StartDate; d.Before(ev.EndDate); d = d.AddDays(1) {
		if d.After(to) {
			break
		}
		if d.Before(from) {
			continue
		}
		out = append(out, mk(d))
	}
	return out
}
