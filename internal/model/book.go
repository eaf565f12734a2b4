package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book represents a purchasable e-book in the store.
//
// Identity is the surrogate ID assigned at creation, never the field
// values: two books with identical titles and prices are distinct
// entries in carts and orders.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	PublicationDate string
	Genre           string
	price           decimal.Decimal
}

// NewBook creates a book and assigns its identity.
func NewBook(title, author, publicationDate, genre string, price decimal.Decimal) (*Book, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Book{
		ID:              uuid.New(),
		Title:           title,
		Author:          author,
		PublicationDate: publicationDate,
		Genre:           genre,
		price:           price,
	}, nil
}

// Price returns the current unit price.
func (b *Book) Price() decimal.Decimal {
	return b.price
}

// SetPrice updates the unit price. Negative prices are rejected.
func (b *Book) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	b.price = price
	return nil
}

func (b *Book) String() string {
	return fmt.Sprintf("Book(title=%q, author=%q, published=%q, genre=%q, price=%s)",
		b.Title, b.Author, b.PublicationDate, b.Genre, b.price.StringFixed(2))
}
