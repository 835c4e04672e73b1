package repository

import (
	"context"

	"gorm.io/gorm"

	"shareit/internal/models"
)

type ItemRequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id uint) (*models.ItemRequest, error)
	FindByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	FindAllExcept(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
}

type itemRequestRepository struct {
	db *gorm.DB
}

func NewItemRequestRepository(db *gorm.DB) ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *itemRequestRepository) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByRequester returns the user's own requests, newest first.
func (r *itemRequestRepository) FindByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAllExcept returns requests made by everyone but the given user, newest first.
func (r *itemRequestRepository) FindAllExcept(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
