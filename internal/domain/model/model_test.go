package model

import (
	"testing"
	"time"

	domainErrors "courierpay/internal/domain/errors"
)

func TestOrderStatus(t *testing.T) {
	driver := int64(7)
	cases := []struct {
		name  string
		order Order
		want  OrderStatus
	}{
		{"placed", Order{}, OrderStatusPlaced},
		{"assigned", Order{DriverID: &driver}, OrderStatusDriverAssigned},
		{"delivered", Order{DriverID: &driver, Delivered: true}, OrderStatusDelivered},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.Status(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestOrderAssignable(t *testing.T) {
	o := Order{}
	if err := o.Assignable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	driver := int64(7)
	o = Order{DriverID: &driver}
	if err := o.Assignable(); err != nil {
		t.Fatalf("reassignment before delivery must be allowed, got %v", err)
	}

	o.Delivered = true
	if err := o.Assignable(); err != domainErrors.ErrAlreadyDelivered {
		t.Fatalf("expected already delivered error, got %v", err)
	}
}

func TestOrderConfirmableBy(t *testing.T) {
	driver := int64(7)

	o := Order{BuyerID: 1}
	if err := o.ConfirmableBy(1); err != domainErrors.ErrDriverNotAssigned {
		t.Fatalf("expected driver not assigned error, got %v", err)
	}

	o.DriverID = &driver
	if err := o.ConfirmableBy(2); err != domainErrors.ErrNotYourOrder {
		t.Fatalf("expected not your order error, got %v", err)
	}
	if err := o.ConfirmableBy(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o.Delivered = true
	if err := o.ConfirmableBy(1); err != domainErrors.ErrAlreadyDelivered {
		t.Fatalf("expected already delivered error, got %v", err)
	}
}

func TestOrderClaimableBy(t *testing.T) {
	driver := int64(7)
	assigned := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	wait := 2 * time.Hour

	o := Order{BuyerID: 1}
	if err := o.ClaimableBy(driver, assigned, wait); err != domainErrors.ErrNotYourOrder {
		t.Fatalf("expected not your order error, got %v", err)
	}

	o.DriverID = &driver
	o.DriverAssignedAt = &assigned
	if err := o.ClaimableBy(9, assigned.Add(wait), wait); err != domainErrors.ErrNotYourOrder {
		t.Fatalf("expected not your order error for stranger, got %v", err)
	}
	if err := o.ClaimableBy(driver, assigned.Add(wait-time.Minute), wait); err != domainErrors.ErrClaimTooEarly {
		t.Fatalf("expected too-early error, got %v", err)
	}
	if err := o.ClaimableBy(driver, assigned.Add(wait), wait); err != nil {
		t.Fatalf("claim at exactly the deadline must pass, got %v", err)
	}

	o.Delivered = true
	if err := o.ClaimableBy(driver, assigned.Add(wait), wait); err != domainErrors.ErrAlreadyDelivered {
		t.Fatalf("expected already delivered error, got %v", err)
	}
}
