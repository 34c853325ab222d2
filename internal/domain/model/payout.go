package model

import "time"

// Payout records value leaving the ledger through a balance withdrawal.
type Payout struct {
	ID            int64
	ParticipantID int64
	Amount        int64
	ProcessedAt   time.Time
}
