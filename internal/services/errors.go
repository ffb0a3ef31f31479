// Package services defines the business logic for users, tags, payments and
// shipments. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// Translation into the API error taxonomy is performed at the handler layer.
package services

import "errors"

// User errors.
var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when the username or email is taken.
	ErrDuplicateUser = errors.New("username or email already registered")

	// ErrInvalidUser is returned when required user fields are missing or
	// malformed.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidStatus is returned for a status other than ACTIVE or INACTIVE.
	ErrInvalidStatus = errors.New("status must be ACTIVE or INACTIVE")
)

// Tag errors.
var (
	ErrTagNotFound    = errors.New("tag not found")
	ErrDuplicateTag   = errors.New("tag already exists")
	ErrEmptyTagName   = errors.New("tag name is empty")
	ErrTagNameTooLong = errors.New("tag name too long")
)

// Payment and shipment errors.
var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrInvalidShipment is returned when the carrier is blank or the
	// estimated delivery date is missing.
	ErrInvalidShipment = errors.New("carrier and estimated delivery date are required")
)
