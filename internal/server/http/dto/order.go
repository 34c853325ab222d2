package dto

import (
	"time"

	"courierpay/internal/domain/model"
)

// PlaceOrderRequest describes order placement payload. Amounts are in
// minor currency units.
type PlaceOrderRequest struct {
	Price int64 `json:"price"`
	Tip   int64 `json:"tip"`
}

// AssignDriverRequest selects the driver for an order.
type AssignDriverRequest struct {
	DriverID int64 `json:"driver_id"`
}

// CancelOrderRequest carries the refund credited to the buyer.
type CancelOrderRequest struct {
	Refund int64 `json:"refund"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID               int64      `json:"id"`
	BuyerID          int64      `json:"buyer_id"`
	DriverID         *int64     `json:"driver_id,omitempty"`
	Price            int64      `json:"price"`
	Tip              int64      `json:"tip"`
	Status           string     `json:"status"`
	DriverAssignedAt *time.Time `json:"driver_assigned_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// LastOrderResponse carries the buyer's most recent order id.
type LastOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// ToOrderResponse converts domain order to its API representation.
func ToOrderResponse(order *model.Order) OrderResponse {
	return OrderResponse{
		ID:               order.ID,
		BuyerID:          order.BuyerID,
		DriverID:         order.DriverID,
		Price:            order.Price,
		Tip:              order.Tip,
		Status:           string(order.Status()),
		DriverAssignedAt: order.DriverAssignedAt,
		CreatedAt:        order.CreatedAt,
	}
}
