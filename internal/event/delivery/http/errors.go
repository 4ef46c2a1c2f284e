package http

import (
	"errors"
	"net/http"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/datemath"
	pkgErrors "cie-dashboard/pkg/errors"
)

var (
	errMissingID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errMissingMonth = pkgErrors.NewHTTPError(http.StatusBadRequest, "year and month are required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrUnknownPage), errors.Is(err, model.ErrUnknownPage):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown page")
	case errors.Is(err, event.ErrUnknownCategory),
		errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrEmptyTitle),
		errors.Is(err, event.ErrInvalidDirection),
		errors.Is(err, event.ErrInvalidRange),
		errors.Is(err, datemath.ErrPolicyRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapRequestError handles failures from the process*Req helpers: an unknown
// page is a 404, everything else a 400 carrying the binding message.
func (h *handler) mapRequestError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, model.ErrUnknownPage):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown page")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
