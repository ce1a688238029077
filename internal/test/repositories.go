package test

import (
	"context"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, username, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Username: username, Email: email, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// StatusUpdateCall records one guarded status change request.
type StatusUpdateCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus) error
	DeleteFn       func(context.Context, int64) error

	Created     []model.Order
	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
	Deleted     []int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Created))
	return &stored, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// ListAll returns every configured order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// UpdateStatus records guarded update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, From: from, To: to})
	return nil
}

// Delete records deletions.
func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	s.Deleted = append(s.Deleted, orderID)
	return nil
}

// ReconcileCall records one reconciliation request.
type ReconcileCall struct {
	OrderID       int64
	AmountCents   int64
	TransactionID string
	Method        string
}

// PaymentRepositoryStub lets tests control settlement persistence.
type PaymentRepositoryStub struct {
	GetByOrderFn func(context.Context, int64) (*model.Payment, error)
	UpsertFn     func(context.Context, *model.Payment) (*model.Payment, error)
	ReconcileFn  func(context.Context, int64, int64, string, string) (*model.Payment, error)

	Payment    *model.Payment
	Upserts    []model.Payment
	Reconciles []ReconcileCall
}

// GetByOrder returns configured payment or not found.
func (s *PaymentRepositoryStub) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.GetByOrderFn != nil {
		return s.GetByOrderFn(ctx, orderID)
	}
	if s.Payment == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Payment, nil
}

// Upsert records the write and echoes the payment back.
func (s *PaymentRepositoryStub) Upsert(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, payment)
	}
	s.Upserts = append(s.Upserts, *payment)
	stored := *payment
	stored.ID = int64(len(s.Upserts))
	return &stored, nil
}

// Reconcile records reconciliation requests and returns a completed payment.
func (s *PaymentRepositoryStub) Reconcile(ctx context.Context, orderID, amountCents int64, transactionID, method string) (*model.Payment, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, orderID, amountCents, transactionID, method)
	}
	s.Reconciles = append(s.Reconciles, ReconcileCall{OrderID: orderID, AmountCents: amountCents, TransactionID: transactionID, Method: method})
	return &model.Payment{
		ID:            1,
		OrderID:       orderID,
		Method:        method,
		AmountCents:   amountCents,
		Status:        model.PaymentStatusCompleted,
		TransactionID: transactionID,
	}, nil
}

// BookRepositoryStub stores catalog entries in-memory for tests.
type BookRepositoryStub struct {
	Books map[int64]*model.Book
	Next  int64
	Err   error
}

// NewBookRepositoryStub constructs stub repository with initialized map.
func NewBookRepositoryStub() *BookRepositoryStub {
	return &BookRepositoryStub{Books: make(map[int64]*model.Book), Next: 1}
}

// Create stores the book under the next identifier.
func (s *BookRepositoryStub) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Books == nil {
		s.Books = make(map[int64]*model.Book)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *book
	stored.ID = s.Next
	s.Next++
	s.Books[stored.ID] = &stored
	return &stored, nil
}

// Update overwrites an existing book or returns not found.
func (s *BookRepositoryStub) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Books[book.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *book
	s.Books[book.ID] = &stored
	return &stored, nil
}

// Delete removes a book or returns not found.
func (s *BookRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Books[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Books, id)
	return nil
}

// GetByID fetches a book or returns not found.
func (s *BookRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if book, ok := s.Books[id]; ok {
		return book, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored book.
func (s *BookRepositoryStub) List(ctx context.Context) ([]model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	books := make([]model.Book, 0, len(s.Books))
	for _, b := range s.Books {
		books = append(books, *b)
	}
	return books, nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories map[int64]*model.Category
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs stub repository with initialized map.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.Category), Next: 1}
}

// Create stores the category unless the name is taken.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Categories == nil {
		s.Categories = make(map[int64]*model.Category)
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	category := &model.Category{ID: s.Next, Name: name}
	s.Next++
	s.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category or returns not found.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

// List returns every stored category.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	categories := make([]model.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

// CartRepositoryStub keeps cart rows in-memory, accumulating quantities.
type CartRepositoryStub struct {
	Items []model.CartItem
	Next  int64
	Err   error
}

// Add accumulates quantity for an existing row or appends a new one.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].UserID == userID && s.Items[i].BookID == bookID {
			s.Items[i].Quantity += quantity
			item := s.Items[i]
			return &item, nil
		}
	}
	s.Next++
	item := model.CartItem{ID: s.Next, UserID: userID, BookID: bookID, Quantity: quantity}
	s.Items = append(s.Items, item)
	return &item, nil
}

// SetQuantity overwrites the quantity of an existing row.
func (s *CartRepositoryStub) SetQuantity(ctx context.Context, userID, bookID int64, quantity int32) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].UserID == userID && s.Items[i].BookID == bookID {
			s.Items[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Remove drops the row for the given user and book.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, bookID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].UserID == userID && s.Items[i].BookID == bookID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByUser returns the user's cart rows.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.CartItem
	for _, item := range s.Items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// WishlistRepositoryStub keeps wishlist rows in-memory.
type WishlistRepositoryStub struct {
	Entries []model.WishlistEntry
	Next    int64
	Err     error
}

// Add is a no-op when the book is already saved.
func (s *WishlistRepositoryStub) Add(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.Entries {
		if e.UserID == userID && e.BookID == bookID {
			entry := e
			return &entry, nil
		}
	}
	s.Next++
	entry := model.WishlistEntry{ID: s.Next, UserID: userID, BookID: bookID}
	s.Entries = append(s.Entries, entry)
	return &entry, nil
}

// Remove drops the entry for the given user and book.
func (s *WishlistRepositoryStub) Remove(ctx context.Context, userID, bookID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Entries {
		if s.Entries[i].UserID == userID && s.Entries[i].BookID == bookID {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByUser returns the user's wishlist entries.
func (s *WishlistRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var entries []model.WishlistEntry
	for _, e := range s.Entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
