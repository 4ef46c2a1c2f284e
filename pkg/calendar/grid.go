package calendar

const (
	DaysPerWeek  = 7
	WeeksPerGrid = 6
	// GridSize is fixed so every month renders at the same height.
	GridSize = DaysPerWeek * WeeksPerGrid
)

// GridCell is one day slot of a month grid.
type GridCell struct {
	Date           Date
	InCurrentMonth bool
	IsToday        bool
	Events         []Event
}

// Grid is the 6x7 Sunday-first day grid for Cursor.
type Grid struct {
	Cursor MonthCursor
	Cells  [GridSize]GridCell
}

// GridWindow returns the first and last date shown in the grid for c.
func GridWindow(c MonthCursor) (from, to Date) {
	first := c.FirstDay()
	from = first.AddDays(-int(first.Weekday()))
	return from, from.AddDays(GridSize - 1)
}

// BuildGrid lays out the 42 days around cursor's month and attaches events
// by calendar-day equality, keeping their input order. today is passed in so
// the caller reads the clock once per render.
func BuildGrid(cursor MonthCursor, events []Event, today Date) Grid {
	cursor = NewMonthCursor(cursor.Year, cursor.Month)
	from, to := GridWindow(cursor)

	byDay := make(map[Date][]Event)
	for _, e := range events {
		if !e.Date.Valid() || !e.Date.Between(from, to) {
			continue
		}
		byDay[e.Date] = append(byDay[e.Date], e)
	}

	g := Grid{Cursor: cursor}
	for i := range g.Cells {
		d := from.AddDays(i)
		g.Cells[i] = GridCell{
			Date:           d,
			InCurrentMonth: cursor.Contains(d),
			IsToday:        d == today,
			Events:         byDay[d],
		}
	}
	return g
}

// Start returns the first date in the grid.
func (g Grid) Start() Date {
	return g.Cells[0].Date
}

// End returns the last date in the grid.
func (g Grid) End() Date {
	return g.Cells[GridSize-1].Date
}

// Cell returns the cell for d if d is inside the grid.
func (g Grid) Cell(d Date) (GridCell, bool) {
	i := d.DaysSince(g.Start())
	if i < 0 || i >= GridSize {
		return GridCell{}, false
	}
	return g.Cells[i], true
}

// Weeks returns the cells as six rows of seven days.
func (g Grid) Weeks() [WeeksPerGrid][DaysPerWeek]GridCell {
	var weeks [WeeksPerGrid][DaysPerWeek]GridCell
	for i, c := range g.Cells {
		weeks[i/DaysPerWeek][i%DaysPerWeek] = c
	}
	return weeks
}

// EventCount returns the number of events placed on the grid.
func (g Grid) EventCount() int {
	n := 0
	for _, c := range g.Cells {
		n += len(c.Events)
	}
	return n
}
