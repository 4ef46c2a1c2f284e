package feed

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"cie-dashboard/pkg/calendar"
)

// ParseICS parses an ICS payload. Timed events are converted to loc.
// VEVENTs that cannot be parsed are returned in skipped and left out.
func ParseICS(body []byte, loc *time.Location) (events []VEvent, skipped []error, err error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, ErrEmptyBody
	}
	if loc == nil {
		loc = time.UTC
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}

	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve, loc)
		if perr != nil {
			skipped = append(skipped, perr)
			continue
		}
		events = append(events, ev)
	}
	return events, skipped, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (VEvent, error) {
	var out VEvent

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, errors.New("missing UID")
	}
	out.UID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, errors.New("missing DTSTART")
	}
	out.AllDay = isDateValue(dtStart)

	if out.AllDay {
		start, err := parseDateValue(dtStart.Value)
		if err != nil {
			return out, err
		}
		out.StartDate = start
		out.EndDate = start.AddDays(1)
		if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
			if end, err := parseDateValue(dtEnd.Value); err == nil && end.After(start) {
				out.EndDate = end
			}
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return out, err
		}
		out.Start = start.In(loc)
		if end, err := ve.GetEndAt(); err == nil {
			out.End = end.In(loc)
		} else {
			out.End = out.Start
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RRule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseICSTime(part, loc); err == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}
	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		if t, err := parseICSTime(p.Value, loc); err == nil {
			out.RecurrenceID = &t
		}
	}

	return out, nil
}

// isDateValue reports VALUE=DATE or a bare YYYYMMDD value.
func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func parseDateValue(v string) (calendar.Date, error) {
	v = strings.TrimSpace(v)
	if len(v) > 8 {
		v = v[:8]
	}
	t, err := time.Parse("20060102", v)
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.DateOf(t), nil
}

// parseICSTime handles the UTC, floating and date-only forms used by EXDATE
// and RECURRENCE-ID. Date-only values become midnight UTC, matching how
// all-day recurrences are expanded.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.Parse("20060102", v)
	}
}
