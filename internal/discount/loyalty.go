package discount

import (
	"ebook-store/internal/order"

	"github.com/shopspring/decimal"
)

// loyaltyRate is the fixed reduction for loyalty members.
var loyaltyRate = decimal.NewFromFloat(0.10)

// Loyalty reduces an order's total by 10% when the ordering customer
// is a loyalty member at application time.
type Loyalty struct{}

// NewLoyalty creates the loyalty discount strategy.
func NewLoyalty() order.Discount {
	return Loyalty{}
}

// Name identifies the discount on invoices.
func (Loyalty) Name() string {
	return "LoyaltyDiscount"
}

// Apply subtracts 10% of the current running total when the customer
// is a loyalty member, and does nothing otherwise.
func (Loyalty) Apply(o *order.Order) {
	if !o.Customer.LoyaltyMember {
		return
	}
	total := o.TotalAmount()
	o.SetTotalAmount(total.Sub(total.Mul(loyaltyRate)))
}
