package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Tanner253/BigsAckies-sub001/internal/application/checkout"
)

// CheckoutHandler handles the two-phase checkout flow
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkout.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreatePaymentIntent prices the caller's cart server-side and registers a
// payment intent with the provider. The cart is left untouched.
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	intent, err := h.checkoutService.CreatePaymentIntent(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, intent)
}

// CreateOrder converts the caller's cart into an order with frozen line
// prices, decrementing stock atomically.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req checkout.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	placed, err := h.checkoutService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, placed)
}
