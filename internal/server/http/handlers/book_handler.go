package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/server/http/dto"
)

// BookHandler manages catalog endpoints for books.
type BookHandler struct {
	facade CatalogFacade
}

// NewBookHandler constructs BookHandler.
func NewBookHandler(facade CatalogFacade) *BookHandler {
	return &BookHandler{facade: facade}
}

// List handles GET /api/books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.facade.Books(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toBookResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.Book(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

// Create handles POST /api/books (admin).
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.CreateBook(c.Request.Context(), bookFromRequest(req, 0))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidBook) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// Update handles PUT /api/books/:id (admin).
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	book, err := h.facade.UpdateBook(c.Request.Context(), bookFromRequest(req, id))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidBook):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toBookResponse(*book))
}

// Delete handles DELETE /api/books/:id (admin).
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookFromRequest(req dto.BookRequest, id int64) *model.Book {
	return &model.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		PriceCents:  dto.CentsFromDecimal(req.Price),
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
}

func toBookResponse(b model.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       dto.DecimalFromCents(b.PriceCents),
		Stock:       b.Stock,
		ImageURL:    b.ImageURL,
		CategoryID:  b.CategoryID,
	}
}
