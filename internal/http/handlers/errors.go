// Package handlers maps service-layer errors onto the API error taxonomy.
//
// Services return sentinel errors (see services/errors.go) and the
// repository returns ErrNotFound / ErrDuplicate. Everything else is an
// unexpected failure and becomes GenericError.
package handlers

import (
	"errors"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
	"github.com/tbourn/go-ecommerce-api/internal/services"
)

var (
	notFound = []error{
		services.ErrUserNotFound,
		services.ErrTagNotFound,
		services.ErrPaymentNotFound,
		services.ErrShipmentNotFound,
		repo.ErrNotFound,
	}
	conflicts = []error{
		services.ErrDuplicateUser,
		services.ErrDuplicateTag,
		repo.ErrDuplicate,
	}
	invalid = []error{
		services.ErrInvalidUser,
		services.ErrInvalidStatus,
		services.ErrEmptyTagName,
		services.ErrTagNameTooLong,
		services.ErrInvalidShipment,
	}
)

// codeFor returns the taxonomy variant for a service error.
func codeFor(err error) apierr.Code {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae.Code
	case isAny(err, notFound):
		return apierr.ResourceNotFound
	case isAny(err, conflicts):
		return apierr.ResourceConflict
	case isAny(err, invalid):
		return apierr.ValidationFailed
	}
	return apierr.GenericError
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
