package usecase

import (
	"context"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	"courierpay/internal/domain/repository"
	pkgAuth "courierpay/internal/pkg/auth"
)

// BalanceUseCase manages participant balances and value movement in and
// out of the ledger.
type BalanceUseCase struct {
	balances repository.BalanceRepository
	payouts  repository.PayoutRepository
	authz    pkgAuth.Authorizer
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(balances repository.BalanceRepository, payouts repository.PayoutRepository, authz pkgAuth.Authorizer) *BalanceUseCase {
	return &BalanceUseCase{balances: balances, payouts: payouts, authz: authz}
}

// Balance returns the withdrawable value held for the participant;
// zero for identities that never received a credit.
func (u *BalanceUseCase) Balance(ctx context.Context, participantID int64) (int64, error) {
	return u.balances.Get(ctx, participantID)
}

// Deposit credits incoming value to the caller's balance. Pure top-up,
// no order linkage.
func (u *BalanceUseCase) Deposit(ctx context.Context, callerID, amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrNoValue
	}
	return u.balances.Deposit(ctx, callerID, amount)
}

// Withdraw moves value out of the ledger to the caller. The balance debit
// and the payout record are one atomic unit.
func (u *BalanceUseCase) Withdraw(ctx context.Context, callerID, amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.balances.Withdraw(ctx, callerID, amount)
}

// Refund transfers value from the administrator's balance to a user.
// Administrator only; pure balance transfer, no order linkage.
func (u *BalanceUseCase) Refund(ctx context.Context, callerID, userID, amount int64) error {
	if !u.authz.IsAdministrator(callerID) {
		return domainErrors.ErrNotAdministrator
	}
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.balances.Transfer(ctx, u.authz.AdministratorID(), userID, amount)
}

// PayoutHistory returns payouts of the participant sorted by time.
func (u *BalanceUseCase) PayoutHistory(ctx context.Context, participantID int64) ([]model.Payout, error) {
	return u.payouts.ListByParticipant(ctx, participantID)
}
