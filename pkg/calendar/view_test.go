package calendar_test

import (
	"testing"
	"time"

	"cie-dashboard/pkg/calendar"
)

func TestViewStartsOnToday(t *testing.T) {
	v := calendar.NewView(calendar.FixedClock{T: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)})
	if v.Cursor() != (calendar.MonthCursor{Year: 2024, Month: time.March}) {
		t.Fatalf("cursor = %s, want 2024-03", v.Cursor())
	}

	g := v.Grid()
	cell, _ := g.Cell(calendar.MustParseDate("2024-03-10"))
	if !cell.IsToday {
		t.Fatalf("2024-03-10 should be today")
	}
}

func TestViewMonthChanged(t *testing.T) {
	clock := calendar.FixedClock{T: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	v := calendar.NewView(clock)

	var seen []calendar.MonthCursor
	v.OnMonthChanged(func(c calendar.MonthCursor) { seen = append(seen, c) })

	v.Navigate(calendar.Next)
	v.Navigate(calendar.Previous)
	v.JumpToToday() // already on March, no notification
	v.JumpToDate(calendar.MustParseDate("2023-12-25"))
	v.JumpToDate(calendar.MustParseDate("2023-12-01"))

	want := []calendar.MonthCursor{
		{Year: 2024, Month: time.April},
		{Year: 2024, Month: time.March},
		{Year: 2023, Month: time.December},
	}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestViewSetEventsKeepsCursor(t *testing.T) {
	clock := calendar.FixedClock{T: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	v := calendar.NewView(clock, calendar.WithCursor(calendar.MonthCursor{Year: 2024, Month: time.May}))

	changed := false
	v.OnMonthChanged(func(calendar.MonthCursor) { changed = true })

	v.SetEvents([]calendar.Event{{ID: "x", Date: calendar.MustParseDate("2024-03-15")}})
	v.SetEvents(nil)

	if changed || v.Cursor() != (calendar.MonthCursor{Year: 2024, Month: time.May}) {
		t.Fatalf("SetEvents moved the cursor to %s", v.Cursor())
	}
	if v.Grid().EventCount() != 0 {
		t.Fatalf("empty snapshot should render no events")
	}
}

func TestViewClickDate(t *testing.T) {
	d := calendar.MustParseDate("2024-03-15")
	events := []calendar.Event{
		{ID: "e1", Date: d, Category: "exam"},
		{ID: "e2", Date: d.AddDays(1)},
	}
	v := calendar.NewView(calendar.FixedClock{T: d.Time(nil)}, calendar.WithEvents(events))

	var got calendar.DateClicked
	v.OnDateClicked(func(ev calendar.DateClicked) { got = ev })

	ret := v.ClickDate(d)
	if got.Date != d || len(got.Events) != 1 || got.Events[0].ID != "e1" {
		t.Fatalf("listener got %+v", got)
	}
	if len(ret.Events) != 1 {
		t.Fatalf("returned payload %+v", ret)
	}

	empty := v.ClickDate(d.AddDays(10))
	if len(empty.Events) != 0 {
		t.Fatalf("expected no events, got %+v", empty.Events)
	}
}
