package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"shareit/internal/dto"
	"shareit/internal/metrics"
	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/pkg/rabbitmq"
)

type BookingService interface {
	GetAllUserBookings(ctx context.Context, userID uint, filter models.BookingFilter) ([]dto.BookingResponse, error)
	GetAllItemBookings(ctx context.Context, ownerID uint, filter models.BookingFilter) ([]dto.BookingResponse, error)
	GetBookingByID(ctx context.Context, userID, bookingID uint) (*dto.BookingResponse, error)
	AddBooking(ctx context.Context, userID uint, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ApproveBooking(ctx context.Context, userID, bookingID uint, approved bool) (*dto.BookingResponse, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	items     repository.ItemRepository
	users     repository.UserRepository
	view      itemView
	publisher *rabbitmq.Publisher
	log       zerolog.Logger
}

func NewBookingService(
	bookings repository.BookingRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	comments repository.CommentRepository,
	publisher *rabbitmq.Publisher,
	log zerolog.Logger,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		view:      itemView{bookings: bookings, comments: comments},
		publisher: publisher,
		log:       log,
	}
}

// GetAllUserBookings lists the bookings placed by the user, filtered by
// state and ordered from newest to oldest.
func (s *bookingService) GetAllUserBookings(ctx context.Context, userID uint, filter models.BookingFilter) ([]dto.BookingResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	bookings, err := s.bookings.FindByBooker(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings = filterBookings(bookings, filter, time.Now())

	return s.toResponses(ctx, bookings, false)
}

// GetAllItemBookings lists the bookings placed on any of the owner's items.
// The caller must own at least one item.
func (s *bookingService) GetAllItemBookings(ctx context.Context, ownerID uint, filter models.BookingFilter) ([]dto.BookingResponse, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}

	items, err := s.items.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotAnOwner
	}

	now := time.Now()
	var all []models.Booking
	for _, item := range items {
		itemBookings, err := s.bookings.FindByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, filterBookings(itemBookings, filter, now)...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Start.After(all[j].Start) })

	return s.toResponses(ctx, all, true)
}

// GetBookingByID is allowed for the booker and for the item's owner only.
func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID uint) (*dto.BookingResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	item, err := s.bookedItem(ctx, booking)
	if err != nil {
		return nil, err
	}
	if userID != booking.BookerID && userID != item.OwnerID {
		return nil, ErrBookingViewForbidden
	}

	return s.toResponse(ctx, booking, false)
}

func (s *bookingService) AddBooking(ctx context.Context, userID uint, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	booker, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Start == nil || req.End == nil {
		return nil, ErrBookingDatesRequired
	}
	if req.Start.Equal(*req.End) {
		return nil, ErrBookingDatesEqual
	}
	now := time.Now()
	if now.After(*req.Start) || now.After(*req.End) {
		return nil, ErrBookingDatesInPast
	}

	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	booking := &models.Booking{
		Status:   models.StatusWaiting,
		Start:    *req.Start,
		End:      *req.End,
		BookerID: userID,
		ItemID:   item.ID,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Booker = booker
	booking.Item = item

	metrics.IncBookingCreated()
	s.log.Info().
		Uint("booking_id", booking.ID).
		Uint("item_id", item.ID).
		Uint("booker_id", userID).
		Msg("booking created")
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return s.toResponse(ctx, booking, false)
}

// ApproveBooking lets the item's owner confirm or reject a waiting booking.
// APPROVED and REJECTED are terminal: deciding an already-decided booking
// fails validation.
func (s *bookingService) ApproveBooking(ctx context.Context, userID, bookingID uint, approved bool) (*dto.BookingResponse, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	item, err := s.bookedItem(ctx, booking)
	if err != nil {
		return nil, err
	}
	if userID != item.OwnerID {
		return nil, ErrApproveForbidden
	}
	if booking.Status != models.StatusWaiting {
		return nil, ErrBookingAlreadyDecided
	}

	status := models.StatusRejected
	routingKey := "booking.rejected"
	if approved {
		status = models.StatusApproved
		routingKey = "booking.approved"
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	metrics.IncBookingDecided(string(status))
	s.log.Info().
		Uint("booking_id", bookingID).
		Str("status", string(status)).
		Msg("booking decided")
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, booking)
	}

	return s.toResponse(ctx, booking, false)
}

// bookedItem resolves the booking's item, preferring the preloaded copy.
func (s *bookingService) bookedItem(ctx context.Context, booking *models.Booking) (*models.Item, error) {
	if booking.Item != nil {
		return booking.Item, nil
	}
	item, err := s.items.FindByID(ctx, booking.ItemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *bookingService) toResponse(ctx context.Context, booking *models.Booking, forOwner bool) (*dto.BookingResponse, error) {
	booker := booking.Booker
	if booker == nil {
		var err error
		booker, err = s.users.FindByID(ctx, booking.BookerID)
		if err != nil {
			return nil, ErrUserNotFound
		}
	}
	item, err := s.bookedItem(ctx, booking)
	if err != nil {
		return nil, err
	}
	itemResp, err := s.view.build(ctx, item, forOwner)
	if err != nil {
		return nil, err
	}
	return &dto.BookingResponse{
		ID:     booking.ID,
		Status: booking.Status,
		Start:  booking.Start,
		End:    booking.End,
		Booker: dto.ToUserResponse(booker),
		Item:   itemResp,
	}, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []models.Booking, forOwner bool) ([]dto.BookingResponse, error) {
	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := s.toResponse(ctx, &bookings[i], forOwner)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
