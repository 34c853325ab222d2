package model

import "time"

// Participant is a registered identity: a buyer, a driver, or the
// administrator. Every ledger operation is performed on behalf of exactly
// one participant.
type Participant struct {
	ID           int64
	Login        string
	PasswordHash string
	// LastOrderID points at the most recent order placed by this
	// participant; nil until the first order.
	LastOrderID *int64
	CreatedAt   time.Time
}
