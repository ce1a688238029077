package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techreads/backend/internal/adapter/daraja"
	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/server/http/dto"
)

// PaymentHandler manages settlement endpoints and the gateway webhook.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Submit handles POST /api/payments.
func (h *PaymentHandler) Submit(c *gin.Context) {
	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.SubmitPayment(c.Request.Context(), CurrentUserID(c), req.OrderID, req.PaymentMethod, req.TransactionID, IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPayment):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// STKPush handles POST /api/mpesa/stkpush.
func (h *PaymentHandler) STKPush(c *gin.Context) {
	var req dto.STKPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	resp, err := h.facade.InitiateSTKPush(c.Request.Context(), CurrentUserID(c), req.OrderID, req.PhoneNumber, IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPhoneNumber):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrFractionalAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.STKPushResponse{
		MerchantRequestID: resp.MerchantRequestID,
		CheckoutRequestID: resp.CheckoutRequestID,
		CustomerMessage:   resp.CustomerMessage,
	})
}

// Get handles GET /api/orders/:id/payment.
func (h *PaymentHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.OrderPayment(c.Request.Context(), CurrentUserID(c), orderID, IsAdmin(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Callback handles POST /api/mpesa/callback. The gateway retries until it
// receives an acknowledgement, so replays must stay harmless.
func (h *PaymentHandler) Callback(c *gin.Context) {
	var envelope daraja.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	_, err := h.facade.HandlePaymentCallback(c.Request.Context(), &envelope)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, dto.CallbackAck{ResultCode: 1, ResultDesc: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidCallback):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

func toPaymentResponse(p *model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentMethod: p.Method,
		Amount:        dto.DecimalFromCents(p.AmountCents),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
