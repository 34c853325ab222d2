package model

import (
	"time"

	domainErrors "courierpay/internal/domain/errors"
)

// OrderStatus describes the escrow lifecycle of a food order.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusDriverAssigned OrderStatus = "DRIVER_ASSIGNED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
)

// Order is a buyer's single food purchase held in escrow. The price minus
// tip is credited to the administrator when the order is placed; the tip is
// held against the order until one of the delivery confirmation paths
// releases it to the driver.
type Order struct {
	ID               int64
	BuyerID          int64
	DriverID         *int64
	Price            int64
	Tip              int64
	Delivered        bool
	DriverAssignedAt *time.Time
	CreatedAt        time.Time
}

// Status derives the lifecycle state from the order fields. There is no
// stored status column; delivery and assignment flags are authoritative.
func (o *Order) Status() OrderStatus {
	switch {
	case o.Delivered:
		return OrderStatusDelivered
	case o.DriverID != nil:
		return OrderStatusDriverAssigned
	default:
		return OrderStatusPlaced
	}
}

// Assignable reports whether a driver may be assigned (or reassigned).
// Reassignment before delivery is allowed and overwrites the previous
// driver and assignment timestamp.
func (o *Order) Assignable() error {
	if o.Delivered {
		return domainErrors.ErrAlreadyDelivered
	}
	return nil
}

// ConfirmableBy checks whether the given buyer may confirm delivery.
// Guard order matters: assignment is checked before ownership.
func (o *Order) ConfirmableBy(buyerID int64) error {
	if o.DriverID == nil {
		return domainErrors.ErrDriverNotAssigned
	}
	if o.BuyerID != buyerID {
		return domainErrors.ErrNotYourOrder
	}
	if o.Delivered {
		return domainErrors.ErrAlreadyDelivered
	}
	return nil
}

// ClaimableBy checks whether the assigned driver may self-claim the tip.
// The driver earns that right once the claim wait has elapsed since
// assignment and the buyer has not confirmed in the meantime.
func (o *Order) ClaimableBy(driverID int64, now time.Time, wait time.Duration) error {
	if o.DriverID == nil || *o.DriverID != driverID {
		return domainErrors.ErrNotYourOrder
	}
	if o.Delivered {
		return domainErrors.ErrAlreadyDelivered
	}
	if o.DriverAssignedAt == nil || now.Sub(*o.DriverAssignedAt) < wait {
		return domainErrors.ErrClaimTooEarly
	}
	return nil
}
