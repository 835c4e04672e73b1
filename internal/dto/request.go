package dto

import "time"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *uint  `json:"request_id"`
}

// UpdateItemRequest is a partial update: nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ItemID uint       `json:"item_id"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateRequestRequest struct {
	Description string `json:"description"`
}
