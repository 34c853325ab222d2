package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courierpay/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentParticipantID(c), req.Price, req.Tip)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Last handles GET /api/orders/last.
func (h *OrderHandler) Last(c *gin.Context) {
	orderID, err := h.facade.LastOrderID(c.Request.Context(), CurrentParticipantID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LastOrderResponse{OrderID: orderID})
}

// Assign handles POST /api/orders/:id/assign.
func (h *OrderHandler) Assign(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AssignDriver(c.Request.Context(), CurrentParticipantID(c), orderID, req.DriverID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Confirm handles POST /api/orders/:id/confirm.
func (h *OrderHandler) Confirm(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.ConfirmDelivery(c.Request.Context(), CurrentParticipantID(c), orderID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Claim handles POST /api/orders/:id/claim.
func (h *OrderHandler) Claim(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.ClaimDelivery(c.Request.Context(), CurrentParticipantID(c), orderID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentParticipantID(c), orderID, req.Refund)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func orderIDParam(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID < 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return orderID, true
}
