package calendar

// DateClicked is emitted when a day cell is selected. Events holds only the
// events resolved onto Date.
type DateClicked struct {
	Date   Date
	Events []Event
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithCursor starts the view on c instead of the current month.
func WithCursor(c MonthCursor) ViewOption {
	return func(v *View) {
		v.cursor = NewMonthCursor(c.Year, c.Month)
	}
}

// WithEvents seeds the initial event snapshot.
func WithEvents(events []Event) ViewOption {
	return func(v *View) {
		v.events = events
	}
}

// View holds the month being displayed and the latest event snapshot.
// The cursor changes only through Navigate, JumpToToday and JumpToDate.
// A View is not safe for concurrent use.
type View struct {
	clock  Clock
	cursor MonthCursor
	events []Event

	onMonth []func(MonthCursor)
	onClick []func(DateClicked)
}

// NewView returns a view positioned on the current month of clock.
func NewView(clock Clock, opts ...ViewOption) *View {
	if clock == nil {
		clock = SystemClock{}
	}
	v := &View{clock: clock}
	v.cursor = JumpToToday(clock)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) Cursor() MonthCursor { return v.cursor }

func (v *View) Events() []Event { return v.events }

// OnMonthChanged registers fn to run after every cursor change.
func (v *View) OnMonthChanged(fn func(MonthCursor)) {
	if fn != nil {
		v.onMonth = append(v.onMonth, fn)
	}
}

// OnDateClicked registers fn to run on every ClickDate.
func (v *View) OnDateClicked(fn func(DateClicked)) {
	if fn != nil {
		v.onClick = append(v.onClick, fn)
	}
}

func (v *View) Navigate(dir Direction) MonthCursor {
	return v.moveTo(Navigate(v.cursor, dir))
}

func (v *View) JumpToToday() MonthCursor {
	return v.moveTo(JumpToToday(v.clock))
}

func (v *View) JumpToDate(d Date) MonthCursor {
	return v.moveTo(JumpToDate(d))
}

// SetEvents replaces the snapshot. The cursor is left alone.
func (v *View) SetEvents(events []Event) {
	v.events = events
}

// Grid rebuilds the grid for the current cursor and snapshot.
func (v *View) Grid() Grid {
	return BuildGrid(v.cursor, v.events, Today(v.clock))
}

// ClickDate notifies listeners with d and its events and returns the payload.
func (v *View) ClickDate(d Date) DateClicked {
	ev := DateClicked{Date: d, Events: EventsOn(v.events, d)}
	for _, fn := range v.onClick {
		fn(ev)
	}
	return ev
}

func (v *View) moveTo(c MonthCursor) MonthCursor {
	if c == v.cursor {
		return c
	}
	v.cursor = c
	for _, fn := range v.onMonth {
		fn(c)
	}
	return c
}
