package repository

import (
	"context"

	"gorm.io/gorm"

	"shareit/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error)
	FindByItem(ctx context.Context, itemID uint) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error
	DeleteAll(ctx context.Context) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Booker").
		Preload("Item").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByBooker returns the user's bookings ordered from newest to oldest.
func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Booker").
		Preload("Item").
		Where("booker_id = ?", bookerID).
		Order("start_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByItem(ctx context.Context, itemID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Booker").
		Preload("Item").
		Where("item_id = ?", itemID).
		Order("start_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// DeleteAll exists for bulk cleanup; nothing in the request path uses it.
func (r *bookingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Booking{}).Error
}
