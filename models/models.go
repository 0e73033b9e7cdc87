package models

import "time"

// Category groups products under a URL slug.
type Category struct {
	CategoryID string `json:"categoryid" bson:"categoryid"`
	Name       string `json:"name" bson:"name"`
	Slug       string `json:"slug" bson:"slug"`
}

// Product is a catalog item. The numeric ID doubles as the cart key for
// product lines, so it must stay numeric.
type Product struct {
	ID          int64     `json:"id" bson:"id"`
	CategoryID  string    `json:"categoryid" bson:"categoryid"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Thumb       string    `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	MRP         float64   `json:"mrp,omitempty" bson:"mrp,omitempty"`
	IsNew       bool      `json:"isNew" bson:"isNew"`
	Rating      float64   `json:"rating,omitempty" bson:"rating,omitempty"` // out of 5
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Offer is a promotional catalog entity sold via its own pricing,
// distinct from Product.
type Offer struct {
	ID          int64     `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Link        string    `json:"link,omitempty" bson:"link,omitempty"`
	MRP         float64   `json:"mrp,omitempty" bson:"mrp,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Rating      int       `json:"rating,omitempty" bson:"rating,omitempty"`
	IsNew       bool      `json:"isNew" bson:"isNew"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Contact is a stored contact-form submission.
type Contact struct {
	FirstName   string    `json:"first_name" bson:"first_name"`
	LastName    string    `json:"last_name" bson:"last_name"`
	Email       string    `json:"email" bson:"email"`
	PhoneNumber string    `json:"phone_number" bson:"phone_number"`
	Message     string    `json:"message" bson:"message"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
