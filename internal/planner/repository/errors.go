package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list planner rows")
	ErrFailedToDecode = errors.New("failed to decode planner row")
)
