package feed

import (
	"context"
	"strings"
)

const sampleICSRaw = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//CIE//Academic//EN
BEGIN:VEVENT
UID:republic@cie
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240126
DTEND;VALUE=DATE:20240127
SUMMARY:Republic Day
END:VEVENT
BEGIN:VEVENT
UID:break@cie
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240325
DTEND;VALUE=DATE:20240328
SUMMARY:Spring break
END:VEVENT
BEGIN:VEVENT
UID:seminar@cie
DTSTAMP:20240101T000000Z
DTSTART:20240304T093000Z
DTEND:20240304T103000Z
RRULE:FREQ=WEEKLY;COUNT=4
EXDATE:20240311T093000Z
SUMMARY:Seminar
DESCRIPTION:Room 101
END:VEVENT
BEGIN:VEVENT
UID:seminar@cie
DTSTAMP:20240101T000000Z
RECURRENCE-ID:20240318T093000Z
DTSTART:20240319T093000Z
DTEND:20240319T103000Z
SUMMARY:Seminar (moved)
END:VEVENT
BEGIN:VEVENT
DTSTAMP:20240101T000000Z
DTSTART:20240305T100000Z
SUMMARY:No uid
END:VEVENT
END:VCALENDAR
`

var sampleICS = strings.ReplaceAll(sampleICSRaw, "\n", "\r\n")

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
