package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/techreads/backend/internal/server/http/handlers"
	"github.com/techreads/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BookstoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	bookHandler := handlers.NewBookHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	shelfHandler := handlers.NewShelfHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/books", bookHandler.List)
	api.GET("/books/:id", bookHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.POST("/mpesa/callback", paymentHandler.Callback)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/users/me", authHandler.Me)
	authed.GET("/cart", shelfHandler.Cart)
	authed.POST("/cart", shelfHandler.AddToCart)
	authed.PATCH("/cart/:bookId", shelfHandler.UpdateCartItem)
	authed.DELETE("/cart/:bookId", shelfHandler.RemoveFromCart)
	authed.GET("/wishlist", shelfHandler.Wishlist)
	authed.POST("/wishlist", shelfHandler.AddToWishlist)
	authed.DELETE("/wishlist/:bookId", shelfHandler.RemoveFromWishlist)
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/orders/:id/payment", paymentHandler.Get)
	authed.POST("/payments", paymentHandler.Submit)
	authed.POST("/mpesa/stkpush", paymentHandler.STKPush)

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired())
	admin.POST("/books", bookHandler.Create)
	admin.PUT("/books/:id", bookHandler.Update)
	admin.DELETE("/books/:id", bookHandler.Delete)
	admin.POST("/categories", categoryHandler.Create)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.PATCH("/orders/:id", orderHandler.UpdateStatus)
	admin.DELETE("/orders/:id", orderHandler.Delete)

	return engine
}
