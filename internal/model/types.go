// Package model defines the core storefront records shared by every store:
// users, products, cart items, and delivery details.
package model

// Role grants or withholds management rights over the catalog and the
// registered-user collection.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is a registered account. Password is plaintext by design: the
// storefront runs entirely on the customer's device and compares
// credentials against its own durable records. There is no server to
// protect a hash from.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the user holds catalog- and user-management
// rights.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Product is a catalog entry. ID is unique within the catalog. Category
// names a member of the catalog's category set, except that the "All"
// sentinel is never a product's category.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Variant     string  `json:"variant,omitempty"`
}

// ProductInput is the raw new-product form submitted by an admin.
// Price arrives as text, exactly as typed. Blank optional fields are
// filled with documented defaults by the catalog (see catalog.Store).
type ProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	Variant     string `json:"variant"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CartItem is a product selection. Product is a snapshot copy taken when
// the item entered the cart; later catalog edits do not propagate here.
// Quantity is always >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// DeliveryDetails is free-form destination data attached to checkout.
// Nothing here is validated; the order-dispatch collaborator forwards it
// verbatim.
type DeliveryDetails struct {
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Contact string `json:"contact"`
}
