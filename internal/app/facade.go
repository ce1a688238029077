package app

import (
	"context"

	"github.com/techreads/backend/internal/adapter/daraja"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/usecase"
)

// BookstoreFacade aggregates business use cases behind one surface the
// HTTP layer depends on.
type BookstoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	shelf    *usecase.ShelfUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
}

// NewBookstoreFacade constructs BookstoreFacade.
func NewBookstoreFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, shelf *usecase.ShelfUseCase, orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase) *BookstoreFacade {
	return &BookstoreFacade{auth: auth, catalog: catalog, shelf: shelf, orders: orders, payments: payments}
}

func (f *BookstoreFacade) Register(ctx context.Context, name, username, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, username, email, password)
	return token, err
}

func (f *BookstoreFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *BookstoreFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *BookstoreFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *BookstoreFacade) Books(ctx context.Context) ([]model.Book, error) {
	return f.catalog.ListBooks(ctx)
}

func (f *BookstoreFacade) Book(ctx context.Context, id int64) (*model.Book, error) {
	return f.catalog.GetBook(ctx, id)
}

func (f *BookstoreFacade) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	return f.catalog.CreateBook(ctx, book)
}

func (f *BookstoreFacade) UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	return f.catalog.UpdateBook(ctx, book)
}

func (f *BookstoreFacade) DeleteBook(ctx context.Context, id int64) error {
	return f.catalog.DeleteBook(ctx, id)
}

func (f *BookstoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *BookstoreFacade) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name)
}

func (f *BookstoreFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *BookstoreFacade) Cart(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.shelf.Cart(ctx, userID)
}

func (f *BookstoreFacade) AddToCart(ctx context.Context, userID, bookID int64, quantity int32) (*model.CartItem, error) {
	return f.shelf.AddToCart(ctx, userID, bookID, quantity)
}

func (f *BookstoreFacade) SetCartQuantity(ctx context.Context, userID, bookID int64, quantity int32) error {
	return f.shelf.SetCartQuantity(ctx, userID, bookID, quantity)
}

func (f *BookstoreFacade) RemoveFromCart(ctx context.Context, userID, bookID int64) error {
	return f.shelf.RemoveFromCart(ctx, userID, bookID)
}

func (f *BookstoreFacade) Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	return f.shelf.Wishlist(ctx, userID)
}

func (f *BookstoreFacade) AddToWishlist(ctx context.Context, userID, bookID int64) (*model.WishlistEntry, error) {
	return f.shelf.AddToWishlist(ctx, userID, bookID)
}

func (f *BookstoreFacade) RemoveFromWishlist(ctx context.Context, userID, bookID int64) error {
	return f.shelf.RemoveFromWishlist(ctx, userID, bookID)
}

func (f *BookstoreFacade) PlaceOrder(ctx context.Context, userID, totalCents int64, items []model.OrderItem) (*model.Order, error) {
	return f.orders.Create(ctx, userID, totalCents, items)
}

func (f *BookstoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *BookstoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *BookstoreFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *BookstoreFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *BookstoreFacade) DeleteOrder(ctx context.Context, orderID int64) error {
	return f.orders.Delete(ctx, orderID)
}

func (f *BookstoreFacade) SubmitPayment(ctx context.Context, userID, orderID int64, method, transactionID string, admin bool) (*model.Payment, error) {
	return f.payments.Submit(ctx, userID, orderID, method, transactionID, admin)
}

func (f *BookstoreFacade) HandlePaymentCallback(ctx context.Context, envelope *daraja.CallbackEnvelope) (*model.Payment, error) {
	return f.payments.HandleCallback(ctx, envelope)
}

func (f *BookstoreFacade) InitiateSTKPush(ctx context.Context, userID, orderID int64, phone string, admin bool) (*daraja.STKPushResponse, error) {
	return f.payments.InitiateSTKPush(ctx, userID, orderID, phone, admin)
}

func (f *BookstoreFacade) OrderPayment(ctx context.Context, userID, orderID int64, admin bool) (*model.Payment, error) {
	return f.payments.GetByOrder(ctx, userID, orderID, admin)
}
