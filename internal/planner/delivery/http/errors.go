package http

import (
	pkgErrors "cie-dashboard/pkg/errors"
)

// mapError hides upstream failures behind a 500. The planner has no
// client-caused errors.
func (h *handler) mapError(err error) error {
	return pkgErrors.ErrInternalServerError
}
