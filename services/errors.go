package services

import "errors"

// Workflow errors the controllers translate into user-visible messages.
// Anything else coming out of a service is a storage fault and surfaces as
// an internal error.
var (
	ErrCartNotFound  = errors.New("cart not found")
	ErrCartNotActive = errors.New("cart is no longer active")
	ErrCartEmpty     = errors.New("cart has no active items")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
