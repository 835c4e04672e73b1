package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
)

type ItemService interface {
	GetAllItems(ctx context.Context, ownerID uint) ([]dto.ItemResponse, error)
	GetItemByID(ctx context.Context, itemID, viewerID uint) (*dto.ItemResponse, error)
	AddItem(ctx context.Context, ownerID uint, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	EditItem(ctx context.Context, itemID, ownerID uint, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	FindItems(ctx context.Context, text string) ([]dto.ItemResponse, error)
	AddComment(ctx context.Context, itemID, authorID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type itemService struct {
	items    repository.ItemRepository
	users    repository.UserRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	requests repository.ItemRequestRepository
	view     itemView
	log      zerolog.Logger
}

func NewItemService(
	items repository.ItemRepository,
	users repository.UserRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	requests repository.ItemRequestRepository,
	log zerolog.Logger,
) ItemService {
	return &itemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		view:     itemView{bookings: bookings, comments: comments},
		log:      log,
	}
}

// GetAllItems lists the owner's items. The caller is the owner by
// construction, so the last/next booking fields are populated.
func (s *itemService) GetAllItems(ctx context.Context, ownerID uint) ([]dto.ItemResponse, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}
	items, err := s.items.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, true)
}

// GetItemByID is open to any user; the booking schedule is disclosed only
// to the item's owner.
func (s *itemService) GetItemByID(ctx context.Context, itemID, viewerID uint) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	resp, err := s.view.build(ctx, item, viewerID == item.OwnerID)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *itemService) AddItem(ctx context.Context, ownerID uint, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItemFields(req.Name, req.Description, req.Available); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, ErrRequestNotFound
		}
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info().Uint("item_id", item.ID).Uint("owner_id", ownerID).Msg("item added")

	resp, err := s.view.build(ctx, item, false)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditItem applies a partial update. Each present field is validated and
// written individually; absent fields are untouched. Only the owner may edit.
func (s *itemService) EditItem(ctx context.Context, itemID, ownerID uint, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if item.OwnerID != ownerID {
		return nil, ErrEditItemForbidden
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrItemNameRequired
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrItemDescriptionRequired
		}
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info().Uint("item_id", itemID).Msg("item edited")

	resp, err := s.view.build(ctx, item, true)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindItems searches available items by substring in name or description.
// An empty query returns an empty list rather than everything.
func (s *itemService) FindItems(ctx context.Context, text string) ([]dto.ItemResponse, error) {
	if text == "" {
		return []dto.ItemResponse{}, nil
	}
	items, err := s.items.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, false)
}

// AddComment accepts a review only from a user whose APPROVED booking of
// the item has already ended. Owners cannot review their own items.
func (s *itemService) AddComment(ctx context.Context, itemID, authorID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrCommentTextRequired
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if authorID == item.OwnerID {
		return nil, ErrOwnItemComment
	}

	itemBookings, err := s.bookings.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	eligible := false
	for _, b := range itemBookings {
		if b.BookerID == authorID && b.Status == models.StatusApproved && now.After(b.End) {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, ErrCommentNotAllowed
	}

	comment := &models.Comment{
		Text:     req.Text,
		Created:  now,
		AuthorID: authorID,
		ItemID:   itemID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author
	s.log.Info().Uint("item_id", itemID).Uint("author_id", authorID).Msg("comment added")

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

func (s *itemService) buildViews(ctx context.Context, items []models.Item, forOwner bool) ([]dto.ItemResponse, error) {
	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp, err := s.view.build(ctx, &items[i], forOwner)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func validateItemFields(name, description string, available *bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return ErrItemDescriptionRequired
	}
	if available == nil {
		return ErrItemAvailableRequired
	}
	return nil
}
