package planner

import "errors"

var ErrPlannerUnavailable = errors.New("planner data unavailable")
