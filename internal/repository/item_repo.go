package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"shareit/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error)
	FindByRequest(ctx context.Context, requestID uint) ([]models.Item, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByRequest(ctx context.Context, requestID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("request_id = ?", requestID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search matches the text against item name and description,
// case-insensitively. Only available items are returned.
func (r *itemRepository) Search(ctx context.Context, text string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}
