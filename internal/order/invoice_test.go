package order

import (
	"testing"

	"ebook-store/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice_AddsVAT(t *testing.T) {
	o := New(customerWith(t, false, 18, 4))
	require.Equal(t, "72.00", o.TotalAmount().StringFixed(2))

	invoice := NewInvoice(o)

	assert.Equal(t, "77.76", invoice.FinalTotal.StringFixed(2))
	assert.Equal(t, "5.76", invoice.CalculateVAT().StringFixed(2))
	assert.Equal(t, "8", invoice.VATRate.Mul(decimal.NewFromInt(100)).String())
}

func TestInvoice_FrozenTotalVersusLiveVAT(t *testing.T) {
	o := New(customerWith(t, false, 25, 4))
	require.Equal(t, "100.00", o.TotalAmount().StringFixed(2))

	invoice := NewInvoice(o)
	require.Equal(t, "108.00", invoice.FinalTotal.StringFixed(2))

	// Mutating the order after invoicing must not touch the frozen
	// final total, but CalculateVAT reads the current total.
	o.SetTotalAmount(decimal.NewFromInt(50))

	assert.Equal(t, "108.00", invoice.FinalTotal.StringFixed(2))
	assert.Equal(t, "4.00", invoice.CalculateVAT().StringFixed(2))
}

func TestInvoice_Render(t *testing.T) {
	customer := model.NewCustomer("Alice", "alice@example.com", true)
	require.NoError(t, customer.Cart().AddItem(mustBook(t, "Python Programming", 29.99), 2))
	require.NoError(t, customer.Cart().AddItem(mustBook(t, "Data Science Essentials", 39.99), 1))

	o := New(customer)
	o.ApplyDiscounts([]Discount{
		percentOff{name: "LoyaltyDiscount", rate: decimal.NewFromFloat(0.10)},
		percentOff{name: "BulkPurchaseDiscount", rate: decimal.NewFromFloat(0.20)},
	})

	out := NewInvoice(o).Render()

	assert.Contains(t, out, "Customer: Alice\n")
	assert.Contains(t, out, "  Python Programming x2 @ 29.99 each\n")
	assert.Contains(t, out, "  Data Science Essentials x1 @ 39.99 each\n")
	// 99.97 * 0.9 * 0.8 = 71.98 (rounded in rendering only)
	assert.Contains(t, out, "Subtotal: 71.98\n")
	assert.Contains(t, out, "VAT (8%): 5.76\n")
	assert.Contains(t, out, "Total Amount Due: 77.74\n")
	assert.Contains(t, out, "Discounts Applied: [LoyaltyDiscount, BulkPurchaseDiscount]\n")
}

func TestInvoice_RenderListsItemsInCartOrder(t *testing.T) {
	customer := model.NewCustomer("Alice", "alice@example.com", false)
	require.NoError(t, customer.Cart().AddItem(mustBook(t, "First", 10), 1))
	require.NoError(t, customer.Cart().AddItem(mustBook(t, "Second", 10), 1))

	out := NewInvoice(New(customer)).Render()

	assert.Regexp(t, `(?s)First x1.*Second x1`, out)
}
