package order

import (
	"time"

	"ebook-store/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount conditionally reduces an order's running total.
//
// Discounts in a list compound: each application consumes the total
// left by the previous one, not the original subtotal. Implementations
// are not idempotent either; applying the same discount twice reduces
// the total twice. Callers must not reapply.
type Discount interface {
	// Name identifies the discount on invoices.
	Name() string

	// Apply reduces the order's running total in place when the order
	// is eligible, and does nothing otherwise.
	Apply(order *Order)
}

// Order is a point-in-time snapshot of a customer's cart.
//
// The item lines and order date are frozen at creation; only the
// running total and the applied-discount log change afterwards,
// through ApplyDiscounts.
type Order struct {
	ID        uuid.UUID
	OrderDate time.Time
	Customer  *model.Customer

	items       []model.Line
	totalAmount decimal.Decimal
	applied     []string
}

// New snapshots the customer's current cart into an order. Later
// mutations of the live cart do not affect the order.
func New(customer *model.Customer) *Order {
	o := &Order{
		ID:        uuid.New(),
		OrderDate: time.Now(),
		Customer:  customer,
		items:     customer.Cart().Snapshot(),
	}
	o.totalAmount = o.calculateTotal()
	return o
}

// calculateTotal sums price times quantity over the snapshot.
func (o *Order) calculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.items {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Items returns the frozen snapshot lines in cart insertion order.
func (o *Order) Items() []model.Line {
	return o.items
}

// TotalQuantity returns the number of copies across the snapshot.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, line := range o.items {
		total += line.Quantity
	}
	return total
}

// TotalAmount returns the current running total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// SetTotalAmount replaces the running total. Discounts use it to
// record their reduction.
func (o *Order) SetTotalAmount(amount decimal.Decimal) {
	o.totalAmount = amount
}

// DiscountsApplied returns the names of the discounts applied so far,
// in application order.
func (o *Order) DiscountsApplied() []string {
	return o.applied
}

// ApplyDiscounts runs each discount against the order, left to right.
// Every discount sees the total left by the previous one, and every
// name is logged even when the discount was not eligible.
func (o *Order) ApplyDiscounts(discounts []Discount) {
	for _, d := range discounts {
		d.Apply(o)
		o.applied = append(o.applied, d.Name())
	}
}
