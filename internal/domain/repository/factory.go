package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Books() BookRepository
	Categories() CategoryRepository
	Carts() CartRepository
	Wishlists() WishlistRepository
	Orders() OrderRepository
	Payments() PaymentRepository
}
