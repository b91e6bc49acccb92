package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/api/middleware"
	"github.com/lettaaaaa/uklon-service/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type CreatePaymentRequest struct {
	RideID int64   `json:"ride_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"payment_method" binding:"required"`
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	payment, err := h.paymentService.CreatePayment(c.Request.Context(), user.ID, req.RideID, req.Amount, req.Method)
	if err != nil {
		switch err {
		case services.ErrRideNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case services.ErrNotRideOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case services.ErrPaymentExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /payments?skip=&limit=
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	payments, err := h.paymentService.ListPayments(c.Request.Context(), user.ID, pageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	user := middleware.CurrentUser(c)
	payment, err := h.paymentService.GetPayment(c.Request.Context(), id, user.ID)
	if err != nil {
		switch err {
		case services.ErrPaymentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case services.ErrNotPaymentOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}
