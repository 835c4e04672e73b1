package service

import "errors"

// Not-found errors map to HTTP 404.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrNotAnOwner      = errors.New("user is not an owner of any item")
)

// Forbidden errors map to HTTP 403.
var (
	ErrBookingViewForbidden = errors.New("only the booker or the item owner can view this booking")
	ErrApproveForbidden     = errors.New("only the item owner can approve or reject a booking")
	ErrEditItemForbidden    = errors.New("only the item owner can edit the item")
)

// Validation errors map to HTTP 400.
var (
	ErrUnknownFilter = errors.New("unknown booking state filter")

	ErrItemNameRequired        = errors.New("item name is required")
	ErrItemDescriptionRequired = errors.New("item description is required")
	ErrItemAvailableRequired   = errors.New("item availability flag is required")
	ErrEmailRequired           = errors.New("user email is required")
	ErrEmailInvalid            = errors.New("user email must contain @ and no spaces")

	ErrBookingDatesRequired  = errors.New("booking must have start and end dates")
	ErrBookingDatesEqual     = errors.New("booking start and end dates must differ")
	ErrBookingDatesInPast    = errors.New("booking start and end dates must not be in the past")
	ErrItemUnavailable       = errors.New("item is not available for booking")
	ErrBookingAlreadyDecided = errors.New("booking has already been approved or rejected")

	ErrOwnItemComment      = errors.New("the owner cannot comment on their own item")
	ErrCommentTextRequired = errors.New("comment text is required")
	ErrCommentNotAllowed   = errors.New("user has never rented this item or the rental has not ended yet")
	ErrDescriptionRequired = errors.New("request description is required")
)

// ErrEmailTaken maps to HTTP 409.
var ErrEmailTaken = errors.New("email is already in use by another user")
