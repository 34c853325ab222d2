package model

import "time"

// EventKind names an announcement on the ledger event stream.
type EventKind string

const (
	// EventOrderPlaced carries the freshly minted order id so callers can
	// correlate a placement with the id it produced.
	EventOrderPlaced EventKind = "order_placed"
	// EventOrderDelivered announces tip release, either by buyer
	// confirmation or driver self-claim.
	EventOrderDelivered EventKind = "order_delivered"
)

// ConfirmedBy names which confirmation path released the tip.
type ConfirmedBy string

const (
	ConfirmedByBuyer  ConfirmedBy = "buyer"
	ConfirmedByDriver ConfirmedBy = "driver"
)

// Event is a single announcement on the ledger event stream.
type Event struct {
	ID         string      `json:"id"`
	Kind       EventKind   `json:"kind"`
	OrderID    int64       `json:"order_id"`
	BuyerID    int64       `json:"buyer_id"`
	DriverID   int64       `json:"driver_id,omitempty"`
	Tip        int64       `json:"tip,omitempty"`
	Via        ConfirmedBy `json:"via,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
