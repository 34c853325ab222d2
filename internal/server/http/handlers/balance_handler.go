package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courierpay/internal/server/http/dto"
)

// BalanceHandler manages balance-related endpoints.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Own handles GET /api/balance.
func (h *BalanceHandler) Own(c *gin.Context) {
	amount, err := h.facade.Balance(c.Request.Context(), CurrentParticipantID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: amount})
}

// Participant handles GET /api/participants/:id/balance.
func (h *BalanceHandler) Participant(c *gin.Context) {
	participantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || participantID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	amount, err := h.facade.Balance(c.Request.Context(), participantID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: amount})
}

// Deposit handles POST /api/balance/deposit.
func (h *BalanceHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Deposit(c.Request.Context(), CurrentParticipantID(c), req.Amount); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Withdraw handles POST /api/balance/withdraw.
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Withdraw(c.Request.Context(), CurrentParticipantID(c), req.Amount); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Refund handles POST /api/balance/refund.
func (h *BalanceHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Refund(c.Request.Context(), CurrentParticipantID(c), req.ParticipantID, req.Amount); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Payouts handles GET /api/payouts.
func (h *BalanceHandler) Payouts(c *gin.Context) {
	payouts, err := h.facade.Payouts(c.Request.Context(), CurrentParticipantID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if len(payouts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		resp = append(resp, dto.PayoutResponse{Amount: p.Amount, ProcessedAt: p.ProcessedAt})
	}
	c.JSON(http.StatusOK, resp)
}
