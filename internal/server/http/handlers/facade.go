package handlers

import (
	"context"

	"github.com/techreads/backend/internal/adapter/daraja"
	"github.com/techreads/backend/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, username, email, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
	User(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade exposes book and category operations.
type CatalogFacade interface {
	Books(ctx context.Context) ([]model.Book, error)
	Book(ctx context.Context, id int64) (*model.Book, error)
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ShelfFacade exposes cart and wishlist operations.
type ShelfFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartItem, error)
	AddToCart(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error)
	SetCartQuantity(ctx context.Context, userID, bookID int64, quantity int32) error
	RemoveFromCart(ctx context.Context, userID, bookID int64) error
	Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error)
	AddToWishlist(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID int64) error
}

// OrderFacade encapsulates the order workflow exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID, totalCents int64, items []model.OrderItem) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

// PaymentFacade provides settlement operations.
type PaymentFacade interface {
	SubmitPayment(ctx context.Context, userID, orderID int64, method, transactionID string, admin bool) (*model.Payment, error)
	HandlePaymentCallback(ctx context.Context, envelope *daraja.CallbackEnvelope) (*model.Payment, error)
	InitiateSTKPush(ctx context.Context, userID, orderID int64, phone string, admin bool) (*daraja.STKPushResponse, error)
	OrderPayment(ctx context.Context, userID, orderID int64, admin bool) (*model.Payment, error)
}

// BookstoreFacade aggregates the full set of operations used across handlers.
type BookstoreFacade interface {
	AuthFacade
	CatalogFacade
	ShelfFacade
	OrderFacade
	PaymentFacade
}
