package feed

import (
	"testing"
	"time"

	"cie-dashboard/pkg/calendar"
)

func TestExpandMarch(t *testing.T) {
	events, _, err := ParseICS([]byte(sampleICS), time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	occ, bad := Expand(events, calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-31"), time.UTC)
	if len(bad) != 0 {
		t.Fatalf("bad = %v", bad)
	}

	got := map[string]bool{}
	for _, o := range occ {
		got[o.Date.String()+"|"+o.Summary] = true
	}
	want := []string{
		"2024-03-04|Seminar",
		"2024-03-19|Seminar (moved)",
		"2024-03-25|Seminar",
		"2024-03-25|Spring break",
		"2024-03-26|Spring break",
		"2024-03-27|Spring break",
	}
	if len(occ) != len(want) {
		t.Fatalf("occurrences = %+v, want %d", occ, len(want))
	}
	for _, k := range want {
		if !got[k] {
			t.Errorf("missing occurrence %s", k)
		}
	}
	if got["2024-03-11|Seminar"] {
		t.Errorf("EXDATE 2024-03-11 not removed")
	}
	if got["2024-03-18|Seminar"] {
		t.Errorf("overridden instance 2024-03-18 still present")
	}
}

func TestExpandTimezone(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	ev := VEvent{
		UID:   "late",
		Start: time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 21, 0, 0, 0, time.UTC),
	}

	march := func(loc *time.Location) int {
		occ, _ := Expand([]VEvent{ev}, calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-31"), loc)
		return len(occ)
	}
	if march(time.UTC) != 1 {
		t.Errorf("UTC should place the event on 2024-03-31")
	}
	if march(ist) != 0 {
		t.Errorf("IST should move the event to 2024-04-01")
	}
}

func TestExpandCarriesStartTime(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	events := []VEvent{
		{UID: "talk", Start: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), End: time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)},
		{UID: "fest", AllDay: true, StartDate: calendar.MustParseDate("2024-03-06"), EndDate: calendar.MustParseDate("2024-03-07")},
	}

	occ, _ := Expand(events, calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-31"), ist)
	if len(occ) != 2 {
		t.Fatalf("occurrences = %+v, want 2", occ)
	}
	for _, o := range occ {
		switch o.UID {
		case "talk":
			if o.At.Format(calendar.ClockLayout) != "15:30" || o.At.Location() != ist {
				t.Errorf("talk At = %v, want 15:30 IST", o.At)
			}
		case "fest":
			if !o.At.IsZero() {
				t.Errorf("all-day At = %v, want zero", o.At)
			}
		}
	}
}

func TestExpandAllDayRecurringSpan(t *testing.T) {
	ev := VEvent{
		UID:       "weekend",
		AllDay:    true,
		StartDate: calendar.MustParseDate("2024-02-24"),
		EndDate:   calendar.MustParseDate("2024-02-26"),
		RRule:     "FREQ=WEEKLY;COUNT=3",
	}
	// Sat+Sun on 02-24, 03-02, 03-09; the first weekend's Sunday is 02-25.
	occ, _ := Expand([]VEvent{ev}, calendar.MustParseDate("2024-02-25"), calendar.MustParseDate("2024-03-02"), time.UTC)
	var dates []string
	for _, o := range occ {
		dates = append(dates, o.Date.String())
	}
	if len(dates) != 2 || dates[0] != "2024-02-25" || dates[1] != "2024-03-02" {
		t.Fatalf("dates = %v, want [2024-02-25 2024-03-02]", dates)
	}
}

func TestExpandBadRule(t *testing.T) {
	ev := VEvent{UID: "x", Start: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), RRule: "FREQ=SOMETIMES"}
	occ, bad := Expand([]VEvent{ev}, calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-31"), time.UTC)
	if len(occ) != 0 || len(bad) != 1 {
		t.Fatalf("occ = %v, bad = %v", occ, bad)
	}
}
