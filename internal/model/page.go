package model

import (
	"errors"
	"strings"
)

var ErrUnknownPage = errors.New("unknown page")

// Page is a dashboard page that owns a calendar.
type Page string

const (
	PageAcademic  Page = "academic"
	PageEvents    Page = "events"
	PageMentoring Page = "mentoring"
	PageStudio    Page = "studio"
	PageCohorts   Page = "cohorts"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageAcademic, PageEvents, PageMentoring, PageStudio, PageCohorts}

// ParsePage resolves a page name, accepting "studios" for the studio page.
func ParsePage(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "studios" {
		return PageStudio, nil
	}
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnknownPage
}

// DefaultCategory is used when an event is stored without a category.
func (p Page) DefaultCategory() string {
	switch p {
	case PageAcademic, PageEvents:
		return "event"
	case PageMentoring:
		return "session"
	case PageStudio, PageCohorts:
		return "planning"
	default:
		return ""
	}
}
