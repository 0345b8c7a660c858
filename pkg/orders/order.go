package orders

import "time"

// Order is a delivery order as the backend reports it. IDs are opaque
// strings; CourierID is empty until a courier is assigned.
type Order struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	CourierID      string    `json:"courier_id,omitempty"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	RecipientName  string    `json:"recipient_name"`
	RecipientPhone string    `json:"recipient_phone"`
	Notes          string    `json:"notes,omitempty"`
	Price          float64   `json:"price"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Assigned reports whether a courier has been assigned to the order.
func (o Order) Assigned() bool {
	return o.CourierID != ""
}

// Open reports whether the order is still in progress.
func (o Order) Open() bool {
	return !o.Status.Terminal()
}
