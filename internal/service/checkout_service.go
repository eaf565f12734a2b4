package service

import (
	"context"

	"ebook-store/internal/model"
	"ebook-store/internal/order"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	logger zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		logger: logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout snapshots the customer's cart into an order, applies the
// given discounts, and builds the invoice.
func (s *checkoutService) Checkout(ctx context.Context, customer *model.Customer, discounts []order.Discount) (*order.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if customer == nil {
		s.logger.Warn().Msg("checkout attempted without a customer")
		return nil, model.ErrNilCustomer
	}
	if customer.Cart().Len() == 0 {
		s.logger.Warn().Str("customer", customer.Name).Msg("checkout attempted with empty cart")
		return nil, model.ErrEmptyCart
	}

	o := order.New(customer)
	s.logger.Debug().
		Str("order_id", o.ID.String()).
		Str("customer", customer.Name).
		Int("line_count", len(o.Items())).
		Str("subtotal", o.TotalAmount().StringFixed(2)).
		Msg("order created from cart snapshot")

	o.ApplyDiscounts(discounts)
	s.logger.Debug().
		Str("order_id", o.ID.String()).
		Strs("discounts", o.DiscountsApplied()).
		Str("total", o.TotalAmount().StringFixed(2)).
		Msg("discounts applied")

	invoice := order.NewInvoice(o)

	s.logger.Info().
		Str("order_id", o.ID.String()).
		Str("customer", customer.Name).
		Str("final_total", invoice.FinalTotal.StringFixed(2)).
		Msg("invoice generated, e-books delivered to customer")

	return invoice, nil
}
