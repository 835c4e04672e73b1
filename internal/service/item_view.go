package service

import (
	"context"
	"time"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
)

// itemView assembles the denormalized item response: comments always,
// last/next booking only for the item's owner. Recomputed on every read,
// there is no materialized view behind it.
type itemView struct {
	bookings repository.BookingRepository
	comments repository.CommentRepository
}

func (v itemView) build(ctx context.Context, item *models.Item, forOwner bool) (dto.ItemResponse, error) {
	comments, err := v.comments.FindByItem(ctx, item.ID)
	if err != nil {
		return dto.ItemResponse{}, err
	}

	var last, next *models.Booking
	if forOwner {
		itemBookings, err := v.bookings.FindByItem(ctx, item.ID)
		if err != nil {
			return dto.ItemResponse{}, err
		}
		now := time.Now()
		last = findLastBooking(itemBookings, now)
		next = findNextBooking(itemBookings, now)
	}

	return dto.ToItemResponse(item, last, next, comments), nil
}

// findLastBooking returns the booking with the latest start still before now.
func findLastBooking(bookings []models.Booking, now time.Time) *models.Booking {
	var last *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.Start.Before(now) {
			continue
		}
		if last == nil || b.Start.After(last.Start) {
			last = b
		}
	}
	return last
}

// findNextBooking returns the booking with the earliest start after now.
func findNextBooking(bookings []models.Booking, now time.Time) *models.Booking {
	var next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.Start.After(now) {
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			next = b
		}
	}
	return next
}

// filterBookings applies a booking state filter relative to now.
// CURRENT, PAST and FUTURE partition the set by the current instant;
// the status filters match exactly.
func filterBookings(bookings []models.Booking, filter models.BookingFilter, now time.Time) []models.Booking {
	if filter == models.FilterAll {
		return bookings
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		switch filter {
		case models.FilterCurrent:
			if now.After(b.Start) && now.Before(b.End) {
				filtered = append(filtered, b)
			}
		case models.FilterPast:
			if now.After(b.Start) && now.After(b.End) {
				filtered = append(filtered, b)
			}
		case models.FilterFuture:
			if now.Before(b.Start) && now.Before(b.End) {
				filtered = append(filtered, b)
			}
		case models.FilterWaiting, models.FilterApproved, models.FilterRejected:
			if b.Status == models.BookingStatus(filter) {
				filtered = append(filtered, b)
			}
		}
	}
	return filtered
}
