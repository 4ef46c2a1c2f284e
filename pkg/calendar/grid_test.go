package calendar_test

import (
	"testing"
	"time"

	"cie-dashboard/pkg/calendar"
)

func TestBuildGridMarch2024(t *testing.T) {
	cursor := calendar.NewMonthCursor(2024, time.March)
	e1 := calendar.Event{ID: "e1", Date: calendar.MustParseDate("2024-03-15"), Category: "exam"}
	today := calendar.MustParseDate("2024-03-10")

	g := calendar.BuildGrid(cursor, []calendar.Event{e1}, today)

	if got := g.Start(); got != calendar.MustParseDate("2024-02-25") {
		t.Fatalf("first cell = %s, want 2024-02-25", got)
	}
	if got := g.End(); got != calendar.MustParseDate("2024-04-06") {
		t.Fatalf("last cell = %s, want 2024-04-06", got)
	}

	var leading, inMonth, trailing int
	for i, c := range g.Cells {
		switch {
		case c.InCurrentMonth:
			inMonth++
		case i < 7:
			leading++
		default:
			trailing++
		}
	}
	if leading != 5 || inMonth != 31 || trailing != 6 {
		t.Fatalf("leading/in/trailing = %d/%d/%d, want 5/31/6", leading, inMonth, trailing)
	}

	cell, ok := g.Cell(e1.Date)
	if !ok {
		t.Fatalf("2024-03-15 not in grid")
	}
	if len(cell.Events) != 1 || cell.Events[0].ID != "e1" {
		t.Fatalf("2024-03-15 events = %+v, want [e1]", cell.Events)
	}
	if n := g.EventCount(); n != 1 {
		t.Fatalf("event count = %d, want 1", n)
	}
}

func TestBuildGridProperties(t *testing.T) {
	today := calendar.MustParseDate("2024-03-10")

	cursors := []calendar.MonthCursor{
		calendar.NewMonthCursor(2024, time.February),
		calendar.NewMonthCursor(2023, time.February),
		calendar.NewMonthCursor(2024, time.September),
		calendar.NewMonthCursor(2015, time.February), // starts on Sunday, 28 days
		calendar.NewMonthCursor(1999, time.December),
	}

	for _, c := range cursors {
		t.Run(c.String(), func(t *testing.T) {
			g := calendar.BuildGrid(c, nil, today)

			if g.Start().Weekday() != time.Sunday {
				t.Errorf("first cell is %s, want Sunday", g.Start().Weekday())
			}
			for i := 1; i < calendar.GridSize; i++ {
				if g.Cells[i].Date.DaysSince(g.Cells[i-1].Date) != 1 {
					t.Fatalf("cells %d and %d are not consecutive", i-1, i)
				}
			}

			inMonth := 0
			for _, cell := range g.Cells {
				if cell.InCurrentMonth {
					inMonth++
					if !c.Contains(cell.Date) {
						t.Errorf("%s marked in-month for %s", cell.Date, c)
					}
				}
			}
			if inMonth != c.DaysIn() {
				t.Errorf("in-month cells = %d, want %d", inMonth, c.DaysIn())
			}
		})
	}
}

func TestBuildGridToday(t *testing.T) {
	cursor := calendar.NewMonthCursor(2024, time.March)

	t.Run("today in window", func(t *testing.T) {
		today := calendar.MustParseDate("2024-04-02")
		g := calendar.BuildGrid(cursor, nil, today)
		n := 0
		for _, c := range g.Cells {
			if c.IsToday {
				n++
				if c.Date != today {
					t.Errorf("IsToday set on %s", c.Date)
				}
			}
		}
		if n != 1 {
			t.Fatalf("IsToday count = %d, want 1", n)
		}
	})

	t.Run("today outside window", func(t *testing.T) {
		g := calendar.BuildGrid(cursor, nil, calendar.MustParseDate("2024-06-01"))
		for _, c := range g.Cells {
			if c.IsToday {
				t.Fatalf("IsToday set on %s", c.Date)
			}
		}
	})
}

func TestBuildGridEvents(t *testing.T) {
	cursor := calendar.NewMonthCursor(2024, time.March)
	today := calendar.MustParseDate("2024-03-01")
	d := calendar.MustParseDate("2024-03-20")

	events := []calendar.Event{
		{ID: "b", Date: d},
		{ID: "out", Date: calendar.MustParseDate("2024-05-01")},
		{ID: "a", Date: d},
		{ID: "bad", Date: calendar.Date{Year: 2024, Month: time.February, Day: 30}},
		{ID: "zero"},
		{ID: "lead", Date: calendar.MustParseDate("2024-02-26")},
	}

	g := calendar.BuildGrid(cursor, events, today)

	cell, _ := g.Cell(d)
	if len(cell.Events) != 2 || cell.Events[0].ID != "b" || cell.Events[1].ID != "a" {
		t.Fatalf("co-dated events = %+v, want [b a] in input order", cell.Events)
	}
	lead, _ := g.Cell(calendar.MustParseDate("2024-02-26"))
	if len(lead.Events) != 1 || lead.InCurrentMonth {
		t.Fatalf("leading cell = %+v, want one out-of-month event", lead)
	}
	if n := g.EventCount(); n != 3 {
		t.Fatalf("event count = %d, want 3", n)
	}

	again := calendar.BuildGrid(cursor, events, today)
	for i := range g.Cells {
		if g.Cells[i].Date != again.Cells[i].Date || len(g.Cells[i].Events) != len(again.Cells[i].Events) {
			t.Fatalf("grid not deterministic at cell %d", i)
		}
	}
}

func TestBuildGridEmptyEvents(t *testing.T) {
	g := calendar.BuildGrid(calendar.NewMonthCursor(2024, time.March), []calendar.Event{}, calendar.MustParseDate("2024-03-01"))
	if g.EventCount() != 0 {
		t.Fatalf("expected no events")
	}
}

func TestGridWeeks(t *testing.T) {
	g := calendar.BuildGrid(calendar.NewMonthCursor(2024, time.March), nil, calendar.Date{})
	weeks := g.Weeks()
	for r, week := range weeks {
		if week[0].Date.Weekday() != time.Sunday || week[6].Date.Weekday() != time.Saturday {
			t.Fatalf("row %d does not run Sunday..Saturday", r)
		}
	}
	if weeks[5][6].Date != g.End() {
		t.Fatalf("last week ends on %s, want %s", weeks[5][6].Date, g.End())
	}
}

func TestGridCellOutside(t *testing.T) {
	g := calendar.BuildGrid(calendar.NewMonthCursor(2024, time.March), nil, calendar.Date{})
	if _, ok := g.Cell(calendar.MustParseDate("2024-04-07")); ok {
		t.Fatalf("2024-04-07 should be outside the grid")
	}
	if _, ok := g.Cell(calendar.MustParseDate("2024-02-24")); ok {
		t.Fatalf("2024-02-24 should be outside the grid")
	}
}

func TestBuildGridNormalizesCursor(t *testing.T) {
	g := calendar.BuildGrid(calendar.MonthCursor{Year: 2024, Month: 13}, nil, calendar.Date{})
	if g.Cursor != (calendar.MonthCursor{Year: 2025, Month: time.January}) {
		t.Fatalf("cursor = %s, want 2025-01", g.Cursor)
	}
}

func TestBuildGridIgnoresAt(t *testing.T) {
	d := calendar.MustParseDate("2024-03-31")
	ist := time.FixedZone("IST", 5*3600+1800)
	// 23:45 IST on the 31st is already April 1st in some zones; Date still wins.
	late := calendar.Event{ID: "late", Date: d, At: time.Date(2024, time.March, 31, 23, 45, 0, 0, ist).In(time.FixedZone("UTC+14", 14*3600))}

	g := calendar.BuildGrid(calendar.NewMonthCursor(2024, time.March), []calendar.Event{late}, calendar.Date{})

	cell, ok := g.Cell(d)
	if !ok || len(cell.Events) != 1 || cell.Events[0].ID != "late" {
		t.Fatalf("2024-03-31 events = %+v, want [late]", cell.Events)
	}
	if next, _ := g.Cell(d.AddDays(1)); len(next.Events) != 0 {
		t.Fatalf("event leaked to %s via At", next.Date)
	}
	if cell.Events[0].At.IsZero() {
		t.Fatalf("At was dropped")
	}
}
