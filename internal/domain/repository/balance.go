package repository

import "context"

// BalanceRepository manages per-participant withdrawable value. A balance
// is created implicitly on first credit and never goes below zero; any
// operation that would do so fails without mutating.
type BalanceRepository interface {
	Get(ctx context.Context, participantID int64) (int64, error)
	Deposit(ctx context.Context, participantID, amount int64) error
	// Withdraw debits the balance and records a payout atomically.
	Withdraw(ctx context.Context, participantID, amount int64) error
	// Transfer moves value between two balances atomically.
	Transfer(ctx context.Context, fromID, toID, amount int64) error
}
