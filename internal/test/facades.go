package test

import (
	"context"

	"github.com/techreads/backend/internal/adapter/daraja"
	"github.com/techreads/backend/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, model.Role, error)
	UserFn         func(context.Context, int64) (*model.User, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, username, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, username, email, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleUser, nil
}

// User returns the configured account.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Username: "reader", Email: "reader@example.com", Role: model.RoleUser}, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	BooksFn          func(context.Context) ([]model.Book, error)
	BookFn           func(context.Context, int64) (*model.Book, error)
	CreateBookFn     func(context.Context, *model.Book) (*model.Book, error)
	UpdateBookFn     func(context.Context, *model.Book) (*model.Book, error)
	DeleteBookFn     func(context.Context, int64) error
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, string) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error
}

// Books returns predefined catalog contents.
func (s CatalogFacadeStub) Books(ctx context.Context) ([]model.Book, error) {
	if s.BooksFn != nil {
		return s.BooksFn(ctx)
	}
	return []model.Book{{ID: 1, Title: "Go in Practice", Author: "M. Butcher", PriceCents: 2500, Stock: 3}}, nil
}

// Book returns the configured catalog entry.
func (s CatalogFacadeStub) Book(ctx context.Context, id int64) (*model.Book, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, id)
	}
	return &model.Book{ID: id, Title: "Go in Practice", Author: "M. Butcher", PriceCents: 2500, Stock: 3}, nil
}

// CreateBook delegates to provided function or echoes the book back.
func (s CatalogFacadeStub) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.CreateBookFn != nil {
		return s.CreateBookFn(ctx, book)
	}
	stored := *book
	stored.ID = 1
	return &stored, nil
}

// UpdateBook delegates to provided function or echoes the book back.
func (s CatalogFacadeStub) UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.UpdateBookFn != nil {
		return s.UpdateBookFn(ctx, book)
	}
	return book, nil
}

// DeleteBook executes configured handler.
func (s CatalogFacadeStub) DeleteBook(ctx context.Context, id int64) error {
	if s.DeleteBookFn != nil {
		return s.DeleteBookFn(ctx, id)
	}
	return nil
}

// Categories returns predefined category list.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Programming"}}, nil
}

// CreateCategory delegates to provided function or returns default category.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name)
	}
	return &model.Category{ID: 1, Name: name}, nil
}

// DeleteCategory executes configured handler.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// ShelfFacadeStub simulates cart and wishlist operations.
type ShelfFacadeStub struct {
	CartFn               func(context.Context, int64) ([]model.CartItem, error)
	AddToCartFn          func(context.Context, int64, int64, int32) (*model.CartItem, error)
	SetCartQuantityFn    func(context.Context, int64, int64, int32) error
	RemoveFromCartFn     func(context.Context, int64, int64) error
	WishlistFn           func(context.Context, int64) ([]model.WishlistEntry, error)
	AddToWishlistFn      func(context.Context, int64, int64) (*model.WishlistEntry, error)
	RemoveFromWishlistFn func(context.Context, int64, int64) error
}

// Cart returns configured cart contents.
func (s ShelfFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return []model.CartItem{{ID: 1, UserID: userID, BookID: 1, Quantity: 2}}, nil
}

// AddToCart delegates to provided function or returns default row.
func (s ShelfFacadeStub) AddToCart(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, bookID, quantity)
	}
	return &model.CartItem{ID: 1, UserID: userID, BookID: bookID, Quantity: quantity}, nil
}

// SetCartQuantity executes configured handler.
func (s ShelfFacadeStub) SetCartQuantity(ctx context.Context, userID, bookID int64, quantity int32) error {
	if s.SetCartQuantityFn != nil {
		return s.SetCartQuantityFn(ctx, userID, bookID, quantity)
	}
	return nil
}

// RemoveFromCart executes configured handler.
func (s ShelfFacadeStub) RemoveFromCart(ctx context.Context, userID, bookID int64) error {
	if s.RemoveFromCartFn != nil {
		return s.RemoveFromCartFn(ctx, userID, bookID)
	}
	return nil
}

// Wishlist returns configured wishlist contents.
func (s ShelfFacadeStub) Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	if s.WishlistFn != nil {
		return s.WishlistFn(ctx, userID)
	}
	return []model.WishlistEntry{{ID: 1, UserID: userID, BookID: 1}}, nil
}

// AddToWishlist delegates to provided function or returns default entry.
func (s ShelfFacadeStub) AddToWishlist(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error) {
	if s.AddToWishlistFn != nil {
		return s.AddToWishlistFn(ctx, userID, bookID)
	}
	return &model.WishlistEntry{ID: 1, UserID: userID, BookID: bookID}, nil
}

// RemoveFromWishlist executes configured handler.
func (s ShelfFacadeStub) RemoveFromWishlist(ctx context.Context, userID, bookID int64) error {
	if s.RemoveFromWishlistFn != nil {
		return s.RemoveFromWishlistFn(ctx, userID, bookID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn        func(context.Context, int64, int64, []model.OrderItem) (*model.Order, error)
	OrdersFn            func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn         func(context.Context) ([]model.Order, error)
	OrderFn             func(context.Context, int64) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	DeleteOrderFn       func(context.Context, int64) error
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID, totalCents int64, items []model.OrderItem) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, totalCents, items)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending, TotalCents: totalCents, Items: items}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

// AllOrders returns predefined orders across users.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPending}}, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, UserID: 1, Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus delegates to provided function or echoes the change.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, UserID: 1, Status: status}, nil
}

// DeleteOrder executes configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, orderID)
	}
	return nil
}

// PaymentFacadeStub simulates settlement operations.
type PaymentFacadeStub struct {
	SubmitFn       func(context.Context, int64, int64, string, string, bool) (*model.Payment, error)
	CallbackFn     func(context.Context, *daraja.CallbackEnvelope) (*model.Payment, error)
	STKPushFn      func(context.Context, int64, int64, string, bool) (*daraja.STKPushResponse, error)
	OrderPaymentFn func(context.Context, int64, int64, bool) (*model.Payment, error)
}

// SubmitPayment delegates to provided function or returns completed payment.
func (s PaymentFacadeStub) SubmitPayment(ctx context.Context, userID, orderID int64, method, transactionID string, admin bool) (*model.Payment, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, orderID, method, transactionID, admin)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Method: method, Status: model.PaymentStatusCompleted, TransactionID: transactionID}, nil
}

// HandlePaymentCallback delegates to provided function or returns completed payment.
func (s PaymentFacadeStub) HandlePaymentCallback(ctx context.Context, envelope *daraja.CallbackEnvelope) (*model.Payment, error) {
	if s.CallbackFn != nil {
		return s.CallbackFn(ctx, envelope)
	}
	return &model.Payment{ID: 1, OrderID: 1, Status: model.PaymentStatusCompleted}, nil
}

// InitiateSTKPush delegates to provided function or returns default acknowledgement.
func (s PaymentFacadeStub) InitiateSTKPush(ctx context.Context, userID, orderID int64, phone string, admin bool) (*daraja.STKPushResponse, error) {
	if s.STKPushFn != nil {
		return s.STKPushFn(ctx, userID, orderID, phone, admin)
	}
	return &daraja.STKPushResponse{MerchantRequestID: "m-1", CheckoutRequestID: "c-1", CustomerMessage: "ok"}, nil
}

// OrderPayment returns the configured settlement record.
func (s PaymentFacadeStub) OrderPayment(ctx context.Context, userID, orderID int64, admin bool) (*model.Payment, error) {
	if s.OrderPaymentFn != nil {
		return s.OrderPaymentFn(ctx, userID, orderID, admin)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Status: model.PaymentStatusCompleted}, nil
}

// BookstoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type BookstoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	ShelfFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
}
