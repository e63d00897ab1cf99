package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrRentalNotFound = errors.New("rental not found")
	// ErrRentalNotActive matches ErrRentalNotFound with errors.Is.
	ErrRentalNotActive = fmt.Errorf("%w: rental is not active", ErrRentalNotFound)
)

var (
	ErrItemUnavailable = errors.New("item is already booked or unavailable")
	ErrItemRented      = errors.New("item is rented")
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
)

var (
	// ErrTransient marks store failures the caller may retry with backoff.
	ErrTransient = errors.New("temporary storage failure, try again")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
