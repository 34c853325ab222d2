package handlers

import (
	"context"

	"courierpay/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, buyerID, price, tip int64) (*model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	LastOrderID(ctx context.Context, buyerID int64) (int64, error)
	AssignDriver(ctx context.Context, callerID, orderID, driverID int64) (*model.Order, error)
	ConfirmDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error)
	ClaimDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, callerID, orderID, refund int64) (*model.Order, error)
}

// BalanceFacade provides balance related operations.
type BalanceFacade interface {
	Balance(ctx context.Context, participantID int64) (int64, error)
	Deposit(ctx context.Context, callerID, amount int64) error
	Withdraw(ctx context.Context, callerID, amount int64) error
	Refund(ctx context.Context, callerID, userID, amount int64) error
	Payouts(ctx context.Context, participantID int64) ([]model.Payout, error)
}

// LedgerFacade aggregates the full set of operations used across handlers.
type LedgerFacade interface {
	AuthFacade
	OrderFacade
	BalanceFacade
}
