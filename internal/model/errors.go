package model

import "errors"

var (
	// ErrLoggedOut is returned when an operation requires a current
	// session and there is none.
	ErrLoggedOut = errors.New("not logged in")

	// ErrNotAdmin is returned when a catalog- or user-management
	// operation is attempted by a non-admin session.
	ErrNotAdmin = errors.New("admin role required")

	// ErrBadCredentials is returned when login finds no user with the
	// given email/password pair.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registration reuses an email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user id has no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfDelete is returned when a user attempts to delete their
	// own account. The registry never mutates in this case.
	ErrSelfDelete = errors.New("cannot delete own account")

	// ErrProductNotFound is returned when a product id has no catalog
	// entry.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingFields is returned when a new-product form is missing
	// its name or price. No state mutation occurs.
	ErrMissingFields = errors.New("product name and price are required")

	// ErrEmptyCart is returned when checkout is attempted with nothing
	// in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
