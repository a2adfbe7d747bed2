package models

// Order status values as the backend reports them
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order represents a customer order
type Order struct {
	ID          string    `json:"_id,omitempty" yaml:"id,omitempty"`
	ClientName  string    `json:"clientName" yaml:"client_name"`
	ClientPhone string    `json:"clientPhone" yaml:"client_phone"`
	Products    []Product `json:"products" yaml:"products"`
	Location    string    `json:"location" yaml:"location"`
	Status      string    `json:"status" yaml:"status"`
	CreatedAt   string    `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
	Version     int       `json:"__v,omitempty" yaml:"-"`
}

// DeleteOrderRequest is the body of an order delete call
type DeleteOrderRequest struct {
	OrderID string `json:"orderId"`
}
