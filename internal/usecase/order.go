package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	"courierpay/internal/domain/repository"
	pkgAuth "courierpay/internal/pkg/auth"
)

// EventPublisher announces ledger events to interested consumers.
type EventPublisher interface {
	Publish(evt model.Event)
}

// OrderUseCase drives the escrow state machine:
// Placed -> DriverAssigned -> Delivered, with administrative cancellation.
type OrderUseCase struct {
	orders       repository.OrderRepository
	participants repository.ParticipantRepository
	authz        pkgAuth.Authorizer
	events       EventPublisher
	claimWait    time.Duration

	now func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	participants repository.ParticipantRepository,
	authz pkgAuth.Authorizer,
	events EventPublisher,
	claimWait time.Duration,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		participants: participants,
		authz:        authz,
		events:       events,
		claimWait:    claimWait,
		now:          time.Now,
	}
}

// Place creates an order for the buyer. The full price is taken from the
// caller; price minus tip is credited to the administrator immediately,
// while the tip stays held against the order until delivery.
func (u *OrderUseCase) Place(ctx context.Context, buyerID, price, tip int64) (*model.Order, error) {
	if price <= 0 {
		return nil, domainErrors.ErrNoValue
	}
	if tip < 0 || tip > price {
		return nil, domainErrors.ErrInvalidAmount
	}

	order, err := u.orders.Place(ctx, buyerID, price, tip, u.authz.AdministratorID())
	if err != nil {
		return nil, err
	}

	u.publish(model.Event{
		Kind:    model.EventOrderPlaced,
		OrderID: order.ID,
		BuyerID: order.BuyerID,
	})

	return order, nil
}

// Get returns the order by id.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// LastOrderID returns the id of the most recent order placed by the buyer.
func (u *OrderUseCase) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	return u.orders.LastOrderID(ctx, buyerID)
}

// AssignDriver assigns (or reassigns) a driver to an undelivered order.
// Administrator only.
func (u *OrderUseCase) AssignDriver(ctx context.Context, callerID, orderID, driverID int64) (*model.Order, error) {
	if !u.authz.IsAdministrator(callerID) {
		return nil, domainErrors.ErrNotAdministrator
	}

	if _, err := u.participants.GetByID(ctx, driverID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	return u.orders.AssignDriver(ctx, orderID, driverID, u.now(), func(o *model.Order) error {
		return o.Assignable()
	})
}

// ConfirmDelivery is the buyer's confirmation path: it releases the tip to
// the driver and marks the order delivered.
func (u *OrderUseCase) ConfirmDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	order, err := u.orders.CompleteDelivery(ctx, orderID, func(o *model.Order) error {
		return o.ConfirmableBy(callerID)
	})
	if err != nil {
		return nil, err
	}

	u.publishDelivered(order, model.ConfirmedByBuyer)
	return order, nil
}

// ClaimDelivery is the driver's fallback path: after the claim wait has
// elapsed since assignment the driver may self-release the tip.
func (u *OrderUseCase) ClaimDelivery(ctx context.Context, callerID, orderID int64) (*model.Order, error) {
	now := u.now()
	order, err := u.orders.CompleteDelivery(ctx, orderID, func(o *model.Order) error {
		return o.ClaimableBy(callerID, now, u.claimWait)
	})
	if err != nil {
		return nil, err
	}

	u.publishDelivered(order, model.ConfirmedByDriver)
	return order, nil
}

// Cancel credits the refund to the order's buyer and zeroes the tip.
// Administrator only. Deliberately callable on any order, delivered ones
// included: this is an administrative override, not an oversight.
func (u *OrderUseCase) Cancel(ctx context.Context, callerID, orderID, refund int64) (*model.Order, error) {
	if !u.authz.IsAdministrator(callerID) {
		return nil, domainErrors.ErrNotAdministrator
	}
	if refund < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	return u.orders.Cancel(ctx, orderID, refund)
}

func (u *OrderUseCase) publishDelivered(order *model.Order, via model.ConfirmedBy) {
	evt := model.Event{
		Kind:    model.EventOrderDelivered,
		OrderID: order.ID,
		BuyerID: order.BuyerID,
		Tip:     order.Tip,
		Via:     via,
	}
	if order.DriverID != nil {
		evt.DriverID = *order.DriverID
	}
	u.publish(evt)
}

func (u *OrderUseCase) publish(evt model.Event) {
	if u.events == nil {
		return
	}
	evt.ID = uuid.NewString()
	evt.OccurredAt = u.now()
	u.events.Publish(evt)
}
