package dto

import (
	"time"

	"shareit/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// BookingBrief is the denormalized last/next booking view embedded in an
// item response. Only the item's owner gets these fields.
type BookingBrief struct {
	ID       uint                 `json:"id"`
	BookerID uint                 `json:"booker_id"`
	Status   models.BookingStatus `json:"status"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
}

type ItemResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uint             `json:"request_id,omitempty"`
	LastBooking *BookingBrief     `json:"last_booking,omitempty"`
	NextBooking *BookingBrief     `json:"next_booking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Status models.BookingStatus `json:"status"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Booker UserResponse         `json:"booker"`
	Item   ItemResponse         `json:"item"`
}

// AnsweringItem is the short item view attached to an item request:
// enough to fetch the full item afterwards.
type AnsweringItem struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}

type ItemRequestResponse struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []AnsweringItem `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Created: c.Created,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToBookingBrief(b *models.Booking) *BookingBrief {
	if b == nil {
		return nil
	}
	return &BookingBrief{
		ID:       b.ID,
		BookerID: b.BookerID,
		Status:   b.Status,
		Start:    b.Start,
		End:      b.End,
	}
}

// ToItemResponse assembles the item view. The last/next briefs are passed
// in pre-filtered: callers hand nil for non-owner views.
func ToItemResponse(item *models.Item, last, next *models.Booking, comments []models.Comment) ItemResponse {
	resp := ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		LastBooking: ToBookingBrief(last),
		NextBooking: ToBookingBrief(next),
		Comments:    make([]CommentResponse, 0, len(comments)),
	}
	for i := range comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(&comments[i]))
	}
	return resp
}

func ToAnsweringItem(item *models.Item) AnsweringItem {
	return AnsweringItem{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID}
}
