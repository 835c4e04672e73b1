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

type ItemRequestService interface {
	AddRequest(ctx context.Context, userID uint, req dto.CreateRequestRequest) (*dto.ItemRequestResponse, error)
	GetOwnRequests(ctx context.Context, userID uint) ([]dto.ItemRequestResponse, error)
	GetOtherUserRequests(ctx context.Context, userID uint) ([]dto.ItemRequestResponse, error)
	GetRequestByID(ctx context.Context, requestID uint) (*dto.ItemRequestResponse, error)
}

type itemRequestService struct {
	requests repository.ItemRequestRepository
	items    repository.ItemRepository
	users    repository.UserRepository
	log      zerolog.Logger
}

func NewItemRequestService(
	requests repository.ItemRequestRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	log zerolog.Logger,
) ItemRequestService {
	return &itemRequestService{requests: requests, items: items, users: users, log: log}
}

func (s *itemRequestService) AddRequest(ctx context.Context, userID uint, req dto.CreateRequestRequest) (*dto.ItemRequestResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	request := &models.ItemRequest{
		Description: req.Description,
		Created:     time.Now(),
		RequesterID: userID,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	s.log.Info().Uint("request_id", request.ID).Uint("requester_id", userID).Msg("item request created")

	return s.toResponse(ctx, request)
}

// GetOwnRequests returns the user's requests, newest first, each with the
// items listed in answer to it.
func (s *itemRequestService) GetOwnRequests(ctx context.Context, userID uint) ([]dto.ItemRequestResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}
	requests, err := s.requests.FindByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, requests)
}

// GetOtherUserRequests returns requests made by everyone else, newest
// first, so the user can pick one to answer.
func (s *itemRequestService) GetOtherUserRequests(ctx context.Context, userID uint) ([]dto.ItemRequestResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}
	requests, err := s.requests.FindAllExcept(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, requests)
}

func (s *itemRequestService) GetRequestByID(ctx context.Context, requestID uint) (*dto.ItemRequestResponse, error) {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return s.toResponse(ctx, request)
}

func (s *itemRequestService) toResponse(ctx context.Context, request *models.ItemRequest) (*dto.ItemRequestResponse, error) {
	items, err := s.items.FindByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ItemRequestResponse{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       make([]dto.AnsweringItem, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.ToAnsweringItem(&items[i]))
	}
	return resp, nil
}

func (s *itemRequestService) toResponses(ctx context.Context, requests []models.ItemRequest) ([]dto.ItemRequestResponse, error) {
	responses := make([]dto.ItemRequestResponse, 0, len(requests))
	for i := range requests {
		resp, err := s.toResponse(ctx, &requests[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
