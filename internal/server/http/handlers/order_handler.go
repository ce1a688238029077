package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			BookID:    it.BookID,
			Quantity:  it.Quantity,
			UnitCents: dto.CentsFromDecimal(it.Price),
		})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), dto.CentsFromDecimal(req.TotalPrice), items)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder),
			errors.Is(err, domainErrors.ErrInvalidOrderItem),
			errors.Is(err, domainErrors.ErrTotalMismatch):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders. Operators see every order.
func (h *OrderHandler) List(c *gin.Context) {
	var (
		orders []model.Order
		err    error
	)
	if IsAdmin(c) {
		orders, err = h.facade.AllOrders(c.Request.Context())
	} else {
		orders, err = h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id. Owners and operators only.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	if order.UserID != CurrentUserID(c) && !IsAdmin(c) {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id (admin).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": string(order.Status)})
}

// Delete handles DELETE /api/orders/:id (admin).
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:       it.ID,
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Price:    dto.DecimalFromCents(it.UnitCents),
		})
	}
	return dto.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Status:     string(order.Status),
		TotalPrice: dto.DecimalFromCents(order.TotalCents),
		Items:      items,
		CreatedAt:  order.CreatedAt,
	}
}
