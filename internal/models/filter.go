package models

import "strings"

// BookingFilter selects a subset of bookings either by status or by
// temporal relation to the current instant.
type BookingFilter string

const (
	FilterAll      BookingFilter = "ALL"
	FilterCurrent  BookingFilter = "CURRENT"
	FilterPast     BookingFilter = "PAST"
	FilterFuture   BookingFilter = "FUTURE"
	FilterWaiting  BookingFilter = "WAITING"
	FilterRejected BookingFilter = "REJECTED"
	FilterApproved BookingFilter = "APPROVED"
)

// ParseBookingFilter parses a state query parameter, case-insensitively.
// An empty value means ALL. Unknown values return ok=false.
func ParseBookingFilter(state string) (BookingFilter, bool) {
	if state == "" {
		return FilterAll, true
	}
	switch f := BookingFilter(strings.ToUpper(state)); f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected, FilterApproved:
		return f, true
	default:
		return "", false
	}
}
