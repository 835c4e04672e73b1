package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/repository"
)

// fixture wires all services over a shared in-memory store, the same way
// cmd/server does with STORAGE=memory.
type fixture struct {
	store    *repository.MemoryStore
	users    UserService
	items    ItemService
	bookings BookingService
	requests ItemRequestService
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	log := zerolog.Nop()
	return &fixture{
		store:    store,
		users:    NewUserService(store.Users(), nil, log),
		items:    NewItemService(store.Items(), store.Users(), store.Bookings(), store.Comments(), store.Requests(), log),
		bookings: NewBookingService(store.Bookings(), store.Items(), store.Users(), store.Comments(), nil, log),
		requests: NewItemRequestService(store.Requests(), store.Items(), store.Users(), log),
	}
}

func (f *fixture) seedUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email}
	require.NoError(t, f.store.Users().Create(context.Background(), user))
	return user
}

func (f *fixture) seedItem(t *testing.T, ownerID uint, name string, available bool) *models.Item {
	t.Helper()
	item := &models.Item{
		Name:        name,
		Description: name + " description",
		Available:   available,
		OwnerID:     ownerID,
	}
	require.NoError(t, f.store.Items().Create(context.Background(), item))
	return item
}

func (f *fixture) seedBooking(t *testing.T, itemID, bookerID uint, status models.BookingStatus, start, end time.Time) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		Status:   status,
		Start:    start,
		End:      end,
		BookerID: bookerID,
		ItemID:   itemID,
	}
	require.NoError(t, f.store.Bookings().Create(context.Background(), booking))
	return booking
}

func timePtr(t time.Time) *time.Time {
	return &t
}
