package app

import (
	"context"

	"courierpay/internal/domain/model"
	"courierpay/internal/usecase"
)

// LedgerFacade exposes the use case layer as the single surface the HTTP
// handlers talk to.
type LedgerFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	balance *usecase.BalanceUseCase
}

func NewLedgerFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, balance *usecase.BalanceUseCase) *LedgerFacade {
	return &LedgerFacade{auth: auth, orders: orders, balance: balance}
}

func (f *LedgerFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *LedgerFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *LedgerFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *LedgerFacade) PlaceOrder(ctx context.Context, buyerID, price, tip int64) (*model.Order, error) {
	return f.orders.Place(ctx, buyerID, price, tip)
}

func (f *LedgerFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *LedgerFacade) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	return f.orders.LastOrderID(ctx, buyerID)
}

func (f *LedgerFacade) AssignDriver(ctx context.Context, callerID, orderID, driverID int64) (*model.Order, error) {
	return f.orders.AssignDriver(ctx, callerID, orderID, driverID)
}

func (f *LedgerFacade) ConfirmDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	return f.orders.ConfirmDelivery(ctx, callerID, orderID)
}

func (f *LedgerFacade) ClaimDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	return f.orders.ClaimDelivery(ctx, callerID, orderID)
}

func (f *LedgerFacade) CancelOrder(ctx context.Context, callerID, orderID, refund int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, callerID, orderID, refund)
}

func (f *LedgerFacade) Balance(ctx context.Context, participantID int64) (int64, error) {
	return f.balance.Balance(ctx, participantID)
}

func (f *LedgerFacade) Deposit(ctx context.Context, callerID, amount int64) error {
	return f.balance.Deposit(ctx, callerID, amount)
}

func (f *LedgerFacade) Withdraw(ctx context.Context, callerID, amount int64) error {
	return f.balance.Withdraw(ctx, callerID, amount)
}

func (f *LedgerFacade) Refund(ctx context.Context, callerID, userID, amount int64) error {
	return f.balance.Refund(ctx, callerID, userID, amount)
}

func (f *LedgerFacade) Payouts(ctx context.Context, participantID int64) ([]model.Payout, error) {
	return f.balance.PayoutHistory(ctx, participantID)
}
