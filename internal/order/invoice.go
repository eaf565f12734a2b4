package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// vatRate is the fixed tax applied on top of the discounted total.
var vatRate = decimal.NewFromFloat(0.08)

// Invoice is a tax-inclusive summary derived from a single order.
//
// FinalTotal is computed once at construction and never recomputes,
// even if the order's total changes afterwards. CalculateVAT, by
// contrast, always reads the order's current total. The asymmetry
// matches the pipeline this models and is covered by tests.
type Invoice struct {
	Order      *Order
	VATRate    decimal.Decimal
	FinalTotal decimal.Decimal
}

// NewInvoice builds the invoice for order, freezing the tax-inclusive
// final total from the order's total at this moment.
func NewInvoice(order *Order) *Invoice {
	total := order.TotalAmount()
	return &Invoice{
		Order:      order,
		VATRate:    vatRate,
		FinalTotal: total.Add(total.Mul(vatRate)),
	}
}

// CalculateVAT returns the tax on the order's current total.
func (i *Invoice) CalculateVAT() decimal.Decimal {
	return i.Order.TotalAmount().Mul(i.VATRate)
}

// Render produces the human-readable invoice summary: order date,
// customer, itemized lines, subtotal, VAT, total due, and the applied
// discounts in application order. Money is rendered with two decimal
// places; stored values stay unrounded.
func (i *Invoice) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Invoice for Order Date: %s\n", i.Order.OrderDate.Format(time.RFC3339))
	fmt.Fprintf(&b, "Customer: %s\n", i.Order.Customer.Name)
	b.WriteString("Items:\n")
	for _, line := range i.Order.Items() {
		fmt.Fprintf(&b, "  %s x%d @ %s each\n",
			line.Book.Title, line.Quantity, line.Book.Price().StringFixed(2))
	}
	fmt.Fprintf(&b, "Subtotal: %s\n", i.Order.TotalAmount().StringFixed(2))
	fmt.Fprintf(&b, "VAT (%s%%): %s\n",
		i.VATRate.Mul(decimal.NewFromInt(100)).String(), i.CalculateVAT().StringFixed(2))
	fmt.Fprintf(&b, "Total Amount Due: %s\n", i.FinalTotal.StringFixed(2))
	fmt.Fprintf(&b, "Discounts Applied: [%s]\n", strings.Join(i.Order.DiscountsApplied(), ", "))

	return b.String()
}
