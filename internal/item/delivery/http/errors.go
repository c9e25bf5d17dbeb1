package http

import (
	"errors"
	"net/http"

	"catalog/internal/item"
	pkgErrors "catalog/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not recognized here is a storage fault and becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.ErrNotFound
	case errors.Is(err, item.ErrInvalidID),
		errors.Is(err, item.ErrNegativePrice),
		errors.Is(err, item.ErrPriceOutOfRange),
		errors.Is(err, item.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
