package dto

import "time"

// BalanceResponse represents the withdrawable amount held for a participant.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// AmountRequest carries a single amount for deposits and withdrawals.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// RefundRequest describes an administrator-to-participant transfer.
type RefundRequest struct {
	ParticipantID int64 `json:"participant_id"`
	Amount        int64 `json:"amount"`
}

// PayoutResponse describes a withdrawal history entry.
type PayoutResponse struct {
	Amount      int64     `json:"amount"`
	ProcessedAt time.Time `json:"processed_at"`
}
