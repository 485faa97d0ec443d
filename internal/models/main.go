// Package models defines the core data structures for products and users.
package models

// Product is a single catalog item. The full catalog is replaced wholesale
// on every fetch; individual products are never mutated.
type Product struct {
	// ID is the unique identifier assigned by the catalog service.
	ID int64 `json:"id"`
	// Title is the display name of the product.
	Title string `json:"title"`
	// Description holds the free-text description of the product.
	Description string `json:"description"`
	// Price is the product price in the store currency.
	Price float64 `json:"price"`
}

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// Email is the user's contact address.
	Email string
	// FirstName is the user's given name.
	FirstName string
	// LastName is the user's family name.
	LastName string
	// PasswordHash is the hashed password of the user.
	PasswordHash []byte
}

// RegistrationForm carries the fields submitted when creating an account.
// Field names mirror the wire format of the registration endpoint.
type RegistrationForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate"`
}
