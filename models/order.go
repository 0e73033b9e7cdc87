package models

import "time"

// Address is a saved shipping address owned by one user. Addresses referenced
// by an order must not be edited or deleted.
type Address struct {
	AddressID     string    `json:"addressid" bson:"addressid"`
	UserID        string    `json:"userid" bson:"userid"`
	FullName      string    `json:"full_name" bson:"full_name"`
	Phone         string    `json:"phone" bson:"phone"`
	AddressLine1  string    `json:"address_line1" bson:"address_line1"`
	AddressLine2  string    `json:"address_line2,omitempty" bson:"address_line2,omitempty"`
	City          string    `json:"city" bson:"city"`
	State         string    `json:"state" bson:"state"`
	Pincode       string    `json:"pincode" bson:"pincode"`
	Landmark      string    `json:"landmark,omitempty" bson:"landmark,omitempty"`
	SaveForFuture bool      `json:"save_for_future" bson:"save_for_future"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// Order statuses
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

var OrderStatuses = []string{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// Order item kinds
const (
	ItemProduct = "product"
	ItemOffer   = "offer"
)

// OrderItem is one line of an order. Price is the unit price the customer saw
// at checkout time, never the live catalog price. Exactly one catalog entity
// is referenced, discriminated by Kind.
type OrderItem struct {
	Kind     string  `json:"kind" bson:"kind"` // "product" or "offer"
	ItemID   int64   `json:"itemid" bson:"itemid"`
	Title    string  `json:"title" bson:"title"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
}

// Order is a committed checkout. Items are embedded so the order and its
// lines are written in one atomic insert.
type Order struct {
	OrderID   string      `json:"orderid" bson:"orderid"`
	UserID    string      `json:"userid" bson:"userid"`
	AddressID string      `json:"addressid" bson:"addressid"`
	Items     []OrderItem `json:"items" bson:"items"`
	Subtotal  float64     `json:"subtotal" bson:"subtotal"`
	Discount  float64     `json:"discount" bson:"discount"`
	Total     float64     `json:"total" bson:"total"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}
