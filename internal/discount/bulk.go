package discount

import (
	"ebook-store/internal/order"

	"github.com/shopspring/decimal"
)

const bulkThreshold = 5

// bulkRate is the fixed reduction for bulk purchases.
var bulkRate = decimal.NewFromFloat(0.20)

// BulkPurchase reduces an order's total by 20% when the snapshot holds
// at least five copies across all lines.
type BulkPurchase struct{}

// NewBulkPurchase creates the bulk purchase discount strategy.
func NewBulkPurchase() order.Discount {
	return BulkPurchase{}
}

// Name identifies the discount on invoices.
func (BulkPurchase) Name() string {
	return "BulkPurchaseDiscount"
}

// Apply subtracts 20% of the current running total when the order's
// total quantity meets the threshold, and does nothing otherwise.
func (BulkPurchase) Apply(o *order.Order) {
	if o.TotalQuantity() < bulkThreshold {
		return
	}
	total := o.TotalAmount()
	o.SetTotalAmount(total.Sub(total.Mul(bulkRate)))
}
