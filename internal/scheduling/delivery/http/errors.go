package http

import (
	"errors"
	"net/http"

	"meeting-scheduler/internal/scheduling"
	pkgErrors "meeting-scheduler/pkg/errors"
)

var (
	errMissingUserID = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing user id")
	errMissingTaskID = pkgErrors.NewHTTPError(http.StatusBadRequest, "task_id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrNoTasks),
		errors.Is(err, scheduling.ErrDuplicateTaskID),
		errors.Is(err, scheduling.ErrMissingCredential):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, rootMessage(err))
	case errors.Is(err, scheduling.ErrInvalidSettings):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduling.ErrCalendarUnavailable.Error())
	case errors.Is(err, scheduling.ErrOutcomeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, scheduling.ErrOutcomeNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// rootMessage returns the message of the sentinel err wraps.
func rootMessage(err error) string {
	for _, sentinel := range []error{scheduling.ErrNoTasks, scheduling.ErrDuplicateTaskID, scheduling.ErrMissingCredential} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
