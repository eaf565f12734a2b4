package model

import "fmt"

// Customer is a store account. Each customer owns exactly one cart for
// its whole lifetime.
type Customer struct {
	Name          string
	ContactInfo   string
	LoyaltyMember bool
	cart          *Cart
}

// NewCustomer creates a customer with a fresh, empty cart.
func NewCustomer(name, contactInfo string, loyaltyMember bool) *Customer {
	return &Customer{
		Name:          name,
		ContactInfo:   contactInfo,
		LoyaltyMember: loyaltyMember,
		cart:          NewCart(),
	}
}

// Cart returns the customer's shopping cart.
func (c *Customer) Cart() *Cart {
	return c.cart
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer(name=%q, contact=%q, loyaltyMember=%t)",
		c.Name, c.ContactInfo, c.LoyaltyMember)
}
