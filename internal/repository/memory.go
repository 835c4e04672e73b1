package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"shareit/internal/models"
)

// MemoryStore is a map-backed alternative to the postgres repositories.
// All five repository interfaces share one store so that cross-entity
// lookups (booking -> item -> owner) behave like the relational backend.
// Missing rows are reported as gorm.ErrRecordNotFound to keep both
// backends interchangeable for callers.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uint]models.User
	items    map[uint]models.Item
	bookings map[uint]models.Booking
	comments map[uint]models.Comment
	requests map[uint]models.ItemRequest

	nextUserID    uint
	nextItemID    uint
	nextBookingID uint
	nextCommentID uint
	nextRequestID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]models.User),
		items:    make(map[uint]models.Item),
		bookings: make(map[uint]models.Booking),
		comments: make(map[uint]models.Comment),
		requests: make(map[uint]models.ItemRequest),
	}
}

func (s *MemoryStore) Users() UserRepository           { return &memoryUserRepo{s} }
func (s *MemoryStore) Items() ItemRepository           { return &memoryItemRepo{s} }
func (s *MemoryStore) Bookings() BookingRepository     { return &memoryBookingRepo{s} }
func (s *MemoryStore) Comments() CommentRepository     { return &memoryCommentRepo{s} }
func (s *MemoryStore) Requests() ItemRequestRepository { return &memoryRequestRepo{s} }

// --- users ---

type memoryUserRepo struct {
	s *MemoryStore
}

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepo) Save(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) DeleteByID(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *memoryUserRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = make(map[uint]models.User)
	return nil
}

// --- items ---

type memoryItemRepo struct {
	s *MemoryStore
}

func (r *memoryItemRepo) Create(ctx context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextItemID++
	item.ID = r.s.nextItemID
	stored := *item
	stored.Owner = nil
	r.s.items[item.ID] = stored
	return nil
}

func (r *memoryItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *memoryItemRepo) FindByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var items []models.Item
	for _, i := range r.s.items {
		if i.OwnerID == ownerID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryItemRepo) FindByRequest(ctx context.Context, requestID uint) ([]models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var items []models.Item
	for _, i := range r.s.items {
		if i.RequestID != nil && *i.RequestID == requestID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryItemRepo) Search(ctx context.Context, text string) ([]models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(text)
	var items []models.Item
	for _, i := range r.s.items {
		if !i.Available {
			continue
		}
		if strings.Contains(strings.ToLower(i.Name), needle) ||
			strings.Contains(strings.ToLower(i.Description), needle) {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryItemRepo) Save(ctx context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *item
	stored.Owner = nil
	r.s.items[item.ID] = stored
	return nil
}

// --- bookings ---

type memoryBookingRepo struct {
	s *MemoryStore
}

func (r *memoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextBookingID++
	booking.ID = r.s.nextBookingID
	stored := *booking
	stored.Booker = nil
	stored.Item = nil
	r.s.bookings[booking.ID] = stored
	return nil
}

func (r *memoryBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.s.attach(&booking)
	return &booking, nil
}

func (r *memoryBookingRepo) FindByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var bookings []models.Booking
	for _, b := range r.s.bookings {
		if b.BookerID == bookerID {
			r.s.attach(&b)
			bookings = append(bookings, b)
		}
	}
	sortByStartDesc(bookings)
	return bookings, nil
}

func (r *memoryBookingRepo) FindByItem(ctx context.Context, itemID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var bookings []models.Booking
	for _, b := range r.s.bookings {
		if b.ItemID == itemID {
			r.s.attach(&b)
			bookings = append(bookings, b)
		}
	}
	sortByStartDesc(bookings)
	return bookings, nil
}

func (r *memoryBookingRepo) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	booking, ok := r.s.bookings[bookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	booking.Status = status
	r.s.bookings[bookingID] = booking
	return nil
}

func (r *memoryBookingRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookings = make(map[uint]models.Booking)
	return nil
}

// attach mirrors the Preload("Booker")/Preload("Item") of the gorm backend.
// Caller must hold at least the read lock.
func (s *MemoryStore) attach(b *models.Booking) {
	if u, ok := s.users[b.BookerID]; ok {
		booker := u
		b.Booker = &booker
	}
	if i, ok := s.items[b.ItemID]; ok {
		item := i
		b.Item = &item
	}
}

func sortByStartDesc(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].Start.After(bookings[j].Start)
	})
}

// --- comments ---

type memoryCommentRepo struct {
	s *MemoryStore
}

func (r *memoryCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCommentID++
	comment.ID = r.s.nextCommentID
	stored := *comment
	stored.Author = nil
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *memoryCommentRepo) FindByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var comments []models.Comment
	for _, c := range r.s.comments {
		if c.ItemID == itemID {
			if u, ok := r.s.users[c.AuthorID]; ok {
				author := u
				c.Author = &author
			}
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Created.Before(comments[j].Created) })
	return comments, nil
}

// --- item requests ---

type memoryRequestRepo struct {
	s *MemoryStore
}

func (r *memoryRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextRequestID++
	request.ID = r.s.nextRequestID
	r.s.requests[request.ID] = *request
	return nil
}

func (r *memoryRequestRepo) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	request, ok := r.s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (r *memoryRequestRepo) FindByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var requests []models.ItemRequest
	for _, req := range r.s.requests {
		if req.RequesterID == requesterID {
			requests = append(requests, req)
		}
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

func (r *memoryRequestRepo) FindAllExcept(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var requests []models.ItemRequest
	for _, req := range r.s.requests {
		if req.RequesterID != requesterID {
			requests = append(requests, req)
		}
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

func sortByCreatedDesc(requests []models.ItemRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].Created.After(requests[j].Created)
	})
}
