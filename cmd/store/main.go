package main

import (
	"context"
	"fmt"
	"os"

	"ebook-store/internal/catalog"
	"ebook-store/internal/config"
	"ebook-store/internal/discount"
	"ebook-store/internal/model"
	"ebook-store/internal/order"
	"ebook-store/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("store", cfg.Store.Name).Msg("starting storefront")

	ctx := context.Background()

	// Stock the catalog.
	pythonBook, err := model.NewBook("Python Programming", "John Doe", "2020-01-01", "Programming", decimal.NewFromFloat(29.99))
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	dataScience, err := model.NewBook("Data Science Essentials", "Jane Smith", "2019-05-15", "Data Science", decimal.NewFromFloat(39.99))
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	machineLearning, err := model.NewBook("Machine Learning", "Tom Brown", "2021-07-22", "Artificial Intelligence", decimal.NewFromFloat(49.99))
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	shelf := catalog.New()
	shelf.Add(pythonBook)
	shelf.Add(dataScience)
	shelf.Add(machineLearning)
	logger.Info().Int("catalog_size", shelf.Len()).Msg("catalog stocked")

	// Customer accounts: Alice is a loyalty member, Bob is not.
	alice := model.NewCustomer("Alice", "alice@example.com", true)
	bob := model.NewCustomer("Bob", "bob@example.com", false)

	if err := alice.Cart().AddItem(pythonBook, 2); err != nil {
		return fmt.Errorf("failed to fill cart: %w", err)
	}
	if err := alice.Cart().AddItem(dataScience, 1); err != nil {
		return fmt.Errorf("failed to fill cart: %w", err)
	}

	// Bob buys in bulk.
	if err := bob.Cart().AddItem(machineLearning, 5); err != nil {
		return fmt.Errorf("failed to fill cart: %w", err)
	}

	checkout := service.NewCheckoutService(logger)
	discounts := []order.Discount{
		discount.NewLoyalty(),
		discount.NewBulkPurchase(),
	}

	for _, customer := range []*model.Customer{alice, bob} {
		invoice, err := checkout.Checkout(ctx, customer, discounts)
		if err != nil {
			return fmt.Errorf("checkout failed for %s: %w", customer.Name, err)
		}
		fmt.Println(invoice.Render())
	}

	// Reprice and retire stock after the sales run.
	if err := pythonBook.SetPrice(decimal.NewFromFloat(24.99)); err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}
	shelf.Remove(machineLearning)
	logger.Info().
		Str("repriced", pythonBook.Title).
		Int("catalog_size", shelf.Len()).
		Msg("catalog updated")

	return nil
}
