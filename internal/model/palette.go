package model

import "cie-dashboard/pkg/calendar"

// Academic calendar categories.
const (
	CategoryHoliday     calendar.Category = "holiday"
	CategoryInstruction calendar.Category = "instruction"
	CategoryExam        calendar.Category = "exam"
	CategoryEvent       calendar.Category = "event"
)

// Events timeline categories.
const (
	CategoryWorkshop calendar.Category = "workshop"
	CategoryCohort   calendar.Category = "cohort"
	CategoryDeadline calendar.Category = "deadline"
)

// Mentoring categories. Holiday weeks reuse CategoryHoliday.
const (
	CategorySession calendar.Category = "session"
)

// Studio content phases and cohort statuses.
const (
	CategoryPlanning  calendar.Category = "planning"
	CategoryShoot     calendar.Category = "shoot"
	CategoryEdit      calendar.Category = "edit"
	CategoryPost      calendar.Category = "post"
	CategoryActive    calendar.Category = "active"
	CategoryCompleted calendar.Category = "completed"
)

var palettes = map[Page]calendar.Palette{
	PageAcademic: calendar.NewPalette("#E0E0E0",
		calendar.PaletteEntry{Category: CategoryHoliday, Label: "Holidays", Color: "#FFF475"},
		calendar.PaletteEntry{Category: CategoryInstruction, Label: "Instruction Days", Color: "#CCFF90"},
		calendar.PaletteEntry{Category: CategoryExam, Label: "Exams", Color: "#F28B82"},
		calendar.PaletteEntry{Category: CategoryEvent, Label: "Events", Color: "#AECBFA"},
	),
	PageEvents: calendar.NewPalette("#e5e7eb",
		calendar.PaletteEntry{Category: CategoryWorkshop, Label: "Workshop", Color: "#AECBFA"},
		calendar.PaletteEntry{Category: CategoryCohort, Label: "Cohort", Color: "#bbf7d0"},
		calendar.PaletteEntry{Category: CategoryEvent, Label: "Event", Color: "#ddd6fe"},
		calendar.PaletteEntry{Category: CategoryDeadline, Label: "Deadline", Color: "#fed7aa"},
	),
	PageMentoring: calendar.NewPalette("#E0E0E0",
		calendar.PaletteEntry{Category: CategorySession, Label: "Mentoring Session", Color: "#AECBFA"},
		calendar.PaletteEntry{Category: CategoryHoliday, Label: "Holiday Week", Color: "#FFF475"},
	),
	PageStudio: calendar.NewPalette("#e5e7eb",
		calendar.PaletteEntry{Category: CategoryPlanning, Label: "Planning", Color: "#fef08a"},
		calendar.PaletteEntry{Category: CategoryShoot, Label: "Shoot", Color: "#c7d2fe"},
		calendar.PaletteEntry{Category: CategoryEdit, Label: "Edit", Color: "#fef9c3"},
		calendar.PaletteEntry{Category: CategoryPost, Label: "Post", Color: "#bbf7d0"},
		calendar.PaletteEntry{Category: CategoryCompleted, Label: "Completed", Color: "#ddd6fe"},
	),
	PageCohorts: calendar.NewPalette("#e5e7eb",
		calendar.PaletteEntry{Category: CategoryPlanning, Label: "Planning", Color: "#fef08a"},
		calendar.PaletteEntry{Category: CategoryActive, Label: "Active", Color: "#bbf7d0"},
		calendar.PaletteEntry{Category: CategoryCompleted, Label: "Completed", Color: "#bfdbfe"},
	),
}

// PaletteFor returns the palette of p. Unknown pages get an empty palette that
// maps everything to a neutral gray.
func PaletteFor(p Page) calendar.Palette {
	if pal, ok := palettes[p]; ok {
		return pal
	}
	return calendar.NewPalette("#E0E0E0")
}

// legacyAcademicLabels are the labels academic events were stored with
// before category tags.
var legacyAcademicLabels = map[string]calendar.Category{
	"Exams":            CategoryExam,
	"Events":           CategoryEvent,
	"Holidays":         CategoryHoliday,
	"Instruction Days": CategoryInstruction,
}

// LegacyAcademicCategory maps a legacy academic label to its tag.
func LegacyAcademicCategory(label string) (calendar.Category, bool) {
	c, ok := legacyAcademicLabels[label]
	return c, ok
}

// AcademicCategoryFromLabel maps the legacy academic labels ("Exams",
// "Holidays", ...) to category tags. Tags pass through unchanged and
// anything unrecognized is instruction.
func AcademicCategoryFromLabel(label string) calendar.Category {
	if c, ok := LegacyAcademicCategory(label); ok {
		return c
	}
	c := calendar.Category(label)
	if PaletteFor(PageAcademic).Has(c) {
		return c
	}
	return CategoryInstruction
}

// StoredCategory maps a persisted event_type to a tag for page p. Academic
// rows written before tags existed carry labels such as "Exams".
func StoredCategory(p Page, raw string) calendar.Category {
	if p == PageAcademic {
		return AcademicCategoryFromLabel(raw)
	}
	return calendar.Category(raw)
}
