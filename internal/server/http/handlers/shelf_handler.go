package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/server/http/dto"
)

// ShelfHandler manages cart and wishlist endpoints.
type ShelfHandler struct {
	facade ShelfFacade
}

// NewShelfHandler constructs ShelfHandler.
func NewShelfHandler(facade ShelfFacade) *ShelfHandler {
	return &ShelfHandler{facade: facade}
}

// Cart handles GET /api/cart.
func (h *ShelfHandler) Cart(c *gin.Context) {
	items, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.CartItemResponse{ID: it.ID, BookID: it.BookID, Quantity: it.Quantity})
	}
	c.JSON(http.StatusOK, resp)
}

// AddToCart handles POST /api/cart.
func (h *ShelfHandler) AddToCart(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.BookID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.CartItemResponse{ID: item.ID, BookID: item.BookID, Quantity: item.Quantity})
}

// UpdateCartItem handles PATCH /api/cart/:bookId.
func (h *ShelfHandler) UpdateCartItem(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.SetCartQuantity(c.Request.Context(), CurrentUserID(c), bookID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// RemoveFromCart handles DELETE /api/cart/:bookId.
func (h *ShelfHandler) RemoveFromCart(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveFromCart(c.Request.Context(), CurrentUserID(c), bookID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Wishlist handles GET /api/wishlist.
func (h *ShelfHandler) Wishlist(c *gin.Context) {
	entries, err := h.facade.Wishlist(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.WishlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.WishlistEntryResponse{ID: e.ID, BookID: e.BookID})
	}
	c.JSON(http.StatusOK, resp)
}

// AddToWishlist handles POST /api/wishlist.
func (h *ShelfHandler) AddToWishlist(c *gin.Context) {
	var req dto.WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, err := h.facade.AddToWishlist(c.Request.Context(), CurrentUserID(c), req.BookID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.WishlistEntryResponse{ID: entry.ID, BookID: entry.BookID})
}

// RemoveFromWishlist handles DELETE /api/wishlist/:bookId.
func (h *ShelfHandler) RemoveFromWishlist(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveFromWishlist(c.Request.Context(), CurrentUserID(c), bookID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
