package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/dto"
	"shareit/internal/models"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")

	resp, err := f.items.AddItem(ctx, owner.ID, dto.CreateItemRequest{
		Name:        "drill",
		Description: "cordless drill",
		Available:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "drill", resp.Name)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Comments)
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")

	tests := []struct {
		name    string
		ownerID uint
		req     dto.CreateItemRequest
		wantErr error
	}{
		{
			name:    "blank name",
			ownerID: owner.ID,
			req:     dto.CreateItemRequest{Name: "  ", Description: "desc", Available: boolPtr(true)},
			wantErr: ErrItemNameRequired,
		},
		{
			name:    "blank description",
			ownerID: owner.ID,
			req:     dto.CreateItemRequest{Name: "drill", Description: "", Available: boolPtr(true)},
			wantErr: ErrItemDescriptionRequired,
		},
		{
			name:    "missing available flag",
			ownerID: owner.ID,
			req:     dto.CreateItemRequest{Name: "drill", Description: "desc"},
			wantErr: ErrItemAvailableRequired,
		},
		{
			name:    "unknown owner",
			ownerID: 999,
			req:     dto.CreateItemRequest{Name: "drill", Description: "desc", Available: boolPtr(true)},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "unknown request reference",
			ownerID: owner.ID,
			req:     dto.CreateItemRequest{Name: "drill", Description: "desc", Available: boolPtr(true), RequestID: uintPtr(77)},
			wantErr: ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.items.AddItem(ctx, tt.ownerID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func uintPtr(v uint) *uint { return &v }

func TestEditItemPartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	resp, err := f.items.EditItem(ctx, item.ID, owner.ID, dto.UpdateItemRequest{
		Name: strPtr("hammer drill"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hammer drill", resp.Name)
	// Absent fields keep their values.
	assert.Equal(t, item.Description, resp.Description)
	assert.True(t, resp.Available)

	resp, err = f.items.EditItem(ctx, item.ID, owner.ID, dto.UpdateItemRequest{
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "hammer drill", resp.Name)
	assert.False(t, resp.Available)
}

func TestEditItemOnlyByOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	other := f.seedUser(t, "other", "other@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	_, err := f.items.EditItem(ctx, item.ID, other.ID, dto.UpdateItemRequest{Name: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrEditItemForbidden)
}

func TestEditItemRejectsBlankFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	_, err := f.items.EditItem(ctx, item.ID, owner.ID, dto.UpdateItemRequest{Name: strPtr(" ")})
	assert.ErrorIs(t, err, ErrItemNameRequired)

	_, err = f.items.EditItem(ctx, item.ID, owner.ID, dto.UpdateItemRequest{Description: strPtr("")})
	assert.ErrorIs(t, err, ErrItemDescriptionRequired)
}

func TestFindItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	drill := f.seedItem(t, owner.ID, "Cordless Drill", true)
	f.seedItem(t, owner.ID, "saw", true)
	hidden := &models.Item{Name: "broken drill", Description: "drill, does not work", Available: false, OwnerID: owner.ID}
	require.NoError(t, f.store.Items().Create(ctx, hidden))

	resps, err := f.items.FindItems(ctx, "dRiLl")
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, drill.ID, resps[0].ID)
}

func TestFindItemsMatchesDescription(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	item := &models.Item{Name: "tool", Description: "sharp Japanese saw", Available: true, OwnerID: owner.ID}
	require.NoError(t, f.store.Items().Create(ctx, item))

	resps, err := f.items.FindItems(ctx, "japanese")
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, item.ID, resps[0].ID)
}

func TestFindItemsEmptyQuery(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	f.seedItem(t, owner.ID, "drill", true)

	resps, err := f.items.FindItems(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, resps)
}

func TestGetItemByIDBookingVisibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	booker := f.seedUser(t, "booker", "booker@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	now := time.Now()
	last := f.seedBooking(t, item.ID, booker.ID, models.StatusApproved, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	next := f.seedBooking(t, item.ID, booker.ID, models.StatusApproved, now.Add(24*time.Hour), now.Add(48*time.Hour))

	ownerView, err := f.items.GetItemByID(ctx, item.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, ownerView.LastBooking)
	require.NotNil(t, ownerView.NextBooking)
	assert.Equal(t, last.ID, ownerView.LastBooking.ID)
	assert.Equal(t, next.ID, ownerView.NextBooking.ID)

	strangerView, err := f.items.GetItemByID(ctx, item.ID, booker.ID)
	require.NoError(t, err)
	assert.Nil(t, strangerView.LastBooking)
	assert.Nil(t, strangerView.NextBooking)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	booker := f.seedUser(t, "booker", "booker@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	now := time.Now()
	f.seedBooking(t, item.ID, booker.ID, models.StatusApproved, now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	resp, err := f.items.AddComment(ctx, item.ID, booker.ID, dto.CreateCommentRequest{Text: "great drill"})
	require.NoError(t, err)
	assert.Equal(t, "great drill", resp.Text)
	assert.Equal(t, "booker", resp.AuthorName)

	view, err := f.items.GetItemByID(ctx, item.ID, booker.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, resp.ID, view.Comments[0].ID)
}

func TestAddCommentEligibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	booker := f.seedUser(t, "booker", "booker@example.com")
	stranger := f.seedUser(t, "stranger", "stranger@example.com")
	item := f.seedItem(t, owner.ID, "drill", true)

	now := time.Now()
	// An approved booking still running, and a finished one never approved.
	f.seedBooking(t, item.ID, booker.ID, models.StatusApproved, now.Add(-time.Hour), now.Add(time.Hour))
	f.seedBooking(t, item.ID, stranger.ID, models.StatusWaiting, now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	text := dto.CreateCommentRequest{Text: "nice"}

	_, err := f.items.AddComment(ctx, item.ID, booker.ID, text)
	assert.ErrorIs(t, err, ErrCommentNotAllowed)

	_, err = f.items.AddComment(ctx, item.ID, stranger.ID, text)
	assert.ErrorIs(t, err, ErrCommentNotAllowed)

	_, err = f.items.AddComment(ctx, item.ID, owner.ID, text)
	assert.ErrorIs(t, err, ErrOwnItemComment)

	_, err = f.items.AddComment(ctx, item.ID, booker.ID, dto.CreateCommentRequest{Text: "  "})
	assert.ErrorIs(t, err, ErrCommentTextRequired)
}

func TestGetAllItemsForOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.seedUser(t, "owner", "owner@example.com")
	other := f.seedUser(t, "other", "other@example.com")
	mine := f.seedItem(t, owner.ID, "drill", true)
	f.seedItem(t, other.ID, "saw", true)

	resps, err := f.items.GetAllItems(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, resps, 1)
	assert.Equal(t, mine.ID, resps[0].ID)
}
