package test

import (
	"context"

	"courierpay/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, int64, int64, int64) (*model.Order, error)
	GetFn     func(context.Context, int64) (*model.Order, error)
	LastFn    func(context.Context, int64) (int64, error)
	AssignFn  func(context.Context, int64, int64, int64) (*model.Order, error)
	ConfirmFn func(context.Context, int64, int64) (*model.Order, error)
	ClaimFn   func(context.Context, int64, int64) (*model.Order, error)
	CancelFn  func(context.Context, int64, int64, int64) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, buyerID, price, tip int64) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, buyerID, price, tip)
	}
	return &model.Order{ID: 0, BuyerID: buyerID, Price: price, Tip: tip}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s OrderFacadeStub) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	if s.LastFn != nil {
		return s.LastFn(ctx, buyerID)
	}
	return 0, nil
}

func (s OrderFacadeStub) AssignDriver(ctx context.Context, callerID, orderID, driverID int64) (*model.Order, error) {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, callerID, orderID, driverID)
	}
	return &model.Order{ID: orderID, DriverID: &driverID}, nil
}

func (s OrderFacadeStub) ConfirmDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, callerID, orderID)
	}
	return &model.Order{ID: orderID, Delivered: true}, nil
}

func (s OrderFacadeStub) ClaimDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, callerID, orderID)
	}
	return &model.Order{ID: orderID, Delivered: true}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, callerID, orderID, refund int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, callerID, orderID, refund)
	}
	return &model.Order{ID: orderID}, nil
}

// BalanceFacadeStub simulates balance operations.
type BalanceFacadeStub struct {
	BalanceFn  func(context.Context, int64) (int64, error)
	DepositFn  func(context.Context, int64, int64) error
	WithdrawFn func(context.Context, int64, int64) error
	RefundFn   func(context.Context, int64, int64, int64) error
	PayoutsFn  func(context.Context, int64) ([]model.Payout, error)
}

func (s BalanceFacadeStub) Balance(ctx context.Context, participantID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, participantID)
	}
	return 10, nil
}

func (s BalanceFacadeStub) Deposit(ctx context.Context, callerID, amount int64) error {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, callerID, amount)
	}
	return nil
}

func (s BalanceFacadeStub) Withdraw(ctx context.Context, callerID, amount int64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, callerID, amount)
	}
	return nil
}

func (s BalanceFacadeStub) Refund(ctx context.Context, callerID, userID, amount int64) error {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, callerID, userID, amount)
	}
	return nil
}

func (s BalanceFacadeStub) Payouts(ctx context.Context, participantID int64) ([]model.Payout, error) {
	if s.PayoutsFn != nil {
		return s.PayoutsFn(ctx, participantID)
	}
	return nil, nil
}

// LedgerFacadeStub aggregates facade dependencies for HTTP layer tests.
type LedgerFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	BalanceFacadeStub
}

// PublisherStub records published events for assertions.
type PublisherStub struct {
	Events []model.Event
}

func (s *PublisherStub) Publish(evt model.Event) {
	s.Events = append(s.Events, evt)
}
