package service

import (
	"context"

	"ebook-store/internal/model"
	"ebook-store/internal/order"
)

// CheckoutService turns a customer's cart into an invoiced order.
type CheckoutService interface {
	// Checkout snapshots the customer's cart into an order, applies
	// the given discounts left to right, and returns the resulting
	// invoice.
	Checkout(ctx context.Context, customer *model.Customer, discounts []order.Discount) (*order.Invoice, error)
}
