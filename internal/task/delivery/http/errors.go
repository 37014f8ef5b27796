package http

import (
	"dayflow/internal/task"
	pkgErrors "dayflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrNoCandidatesSelected:
		return pkgErrors.NewHTTPError(400, "no candidates selected")
	case task.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(400, "invalid category")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "invalid priority")
	case task.ErrInvalidTimeframe:
		return pkgErrors.NewHTTPError(400, "invalid timeframe")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
