package repository

import (
	"context"
	"time"

	"courierpay/internal/domain/model"
)

// OrderGuard validates a freshly locked order before a mutation is applied.
// Returning an error aborts the enclosing transaction without side effects.
type OrderGuard func(*model.Order) error

// OrderRepository persists orders and applies ledger mutations that span
// orders and balances as single transactions.
type OrderRepository interface {
	// Place creates an order for the buyer, credits price-tip to the
	// administrator's balance, and records the buyer's last order id.
	Place(ctx context.Context, buyerID, price, tip, adminID int64) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	// LastOrderID returns the most recent order id placed by the buyer,
	// or 0 when the buyer has never placed an order.
	LastOrderID(ctx context.Context, buyerID int64) (int64, error)
	// AssignDriver sets the driver and assignment time once the guard
	// passes on the locked order.
	AssignDriver(ctx context.Context, orderID, driverID int64, at time.Time, guard OrderGuard) (*model.Order, error)
	// CompleteDelivery releases the tip to the assigned driver and marks
	// the order delivered once the guard passes on the locked order.
	CompleteDelivery(ctx context.Context, orderID int64, guard OrderGuard) (*model.Order, error)
	// Cancel credits the refund to the buyer and zeroes the tip. It is an
	// administrative override with no state guard.
	Cancel(ctx context.Context, orderID, refund int64) (*model.Order, error)
}
