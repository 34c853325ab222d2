package usecase

import (
	"context"
	"testing"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	testhelpers "courierpay/internal/test"
)

func TestBalanceUseCaseDepositValidation(t *testing.T) {
	called := false
	balances := &testhelpers.BalanceRepositoryStub{
		DepositFn: func(context.Context, int64, int64) error {
			called = true
			return nil
		},
	}
	uc := NewBalanceUseCase(balances, &testhelpers.PayoutRepositoryStub{}, testhelpers.AuthorizerStub{AdminID: 1})

	if err := uc.Deposit(context.Background(), 2, 0); err != domainErrors.ErrNoValue {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
	if called {
		t.Fatalf("repository must not be touched for zero deposit")
	}
	if err := uc.Deposit(context.Background(), 2, 100); err != nil {
		t.Fatalf("deposit returned error: %v", err)
	}
	if !called {
		t.Fatalf("repository must receive positive deposit")
	}
}

func TestBalanceUseCaseWithdrawValidation(t *testing.T) {
	balances := &testhelpers.BalanceRepositoryStub{
		WithdrawFn: func(ctx context.Context, participantID, amount int64) error {
			return domainErrors.ErrInsufficientBalance
		},
	}
	uc := NewBalanceUseCase(balances, &testhelpers.PayoutRepositoryStub{}, testhelpers.AuthorizerStub{AdminID: 1})

	if err := uc.Withdraw(context.Background(), 2, 0); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount for zero amount, got %v", err)
	}
	if err := uc.Withdraw(context.Background(), 2, 10); err != domainErrors.ErrInsufficientBalance {
		t.Fatalf("expected repository error to pass through, got %v", err)
	}
}

func TestBalanceUseCaseRefund(t *testing.T) {
	var gotFrom, gotTo, gotAmount int64
	balances := &testhelpers.BalanceRepositoryStub{
		TransferFn: func(ctx context.Context, fromID, toID, amount int64) error {
			gotFrom, gotTo, gotAmount = fromID, toID, amount
			return nil
		},
	}
	uc := NewBalanceUseCase(balances, &testhelpers.PayoutRepositoryStub{}, testhelpers.AuthorizerStub{AdminID: 1})

	if err := uc.Refund(context.Background(), 2, 3, 100); err != domainErrors.ErrNotAdministrator {
		t.Fatalf("expected ErrNotAdministrator, got %v", err)
	}
	if err := uc.Refund(context.Background(), 1, 3, 0); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if err := uc.Refund(context.Background(), 1, 3, 100); err != nil {
		t.Fatalf("refund returned error: %v", err)
	}
	if gotFrom != 1 || gotTo != 3 || gotAmount != 100 {
		t.Fatalf("unexpected transfer %d -> %d of %d", gotFrom, gotTo, gotAmount)
	}
}

func TestBalanceUseCasePayoutHistory(t *testing.T) {
	payouts := &testhelpers.PayoutRepositoryStub{
		Items: []model.Payout{{ID: 1, ParticipantID: 3, Amount: 500}},
	}
	uc := NewBalanceUseCase(&testhelpers.BalanceRepositoryStub{}, payouts, testhelpers.AuthorizerStub{AdminID: 1})

	history, err := uc.PayoutHistory(context.Background(), 3)
	if err != nil {
		t.Fatalf("payout history returned error: %v", err)
	}
	if len(history) != 1 || history[0].Amount != 500 {
		t.Fatalf("unexpected history %+v", history)
	}
}
