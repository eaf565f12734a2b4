package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is a single cart entry: a book and how many copies of it.
type Line struct {
	Book     *Book
	Quantity int
}

// Subtotal returns price times quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Book.Price().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds a customer's pending selection, keyed by book identity.
//
// Quantities are always positive: entries that would drop to zero or
// below are removed, never stored. Lines keep the order books were
// first added in.
type Cart struct {
	lines map[uuid.UUID]*Line
	seq   []uuid.UUID
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make(map[uuid.UUID]*Line),
	}
}

// AddItem adds quantity copies of book, creating the entry if absent.
// Quantity must be positive.
func (c *Cart) AddItem(book *Book, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if line, ok := c.lines[book.ID]; ok {
		line.Quantity += quantity
		return nil
	}
	c.lines[book.ID] = &Line{Book: book, Quantity: quantity}
	c.seq = append(c.seq, book.ID)
	return nil
}

// UpdateItem replaces the stored quantity for book. A quantity of zero
// or below removes the entry instead.
func (c *Cart) UpdateItem(book *Book, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(book)
		return
	}
	if line, ok := c.lines[book.ID]; ok {
		line.Quantity = quantity
		return
	}
	c.lines[book.ID] = &Line{Book: book, Quantity: quantity}
	c.seq = append(c.seq, book.ID)
}

// RemoveItem deletes the entry for book. Removing an absent book is a
// no-op, not an error.
func (c *Cart) RemoveItem(book *Book) {
	if _, ok := c.lines[book.ID]; !ok {
		return
	}
	delete(c.lines, book.ID)
	for i, id := range c.seq {
		if id == book.ID {
			c.seq = append(c.seq[:i], c.seq[i+1:]...)
			break
		}
	}
}

// Quantity returns the stored quantity for book, zero when absent.
func (c *Cart) Quantity(book *Book) int {
	if line, ok := c.lines[book.ID]; ok {
		return line.Quantity
	}
	return 0
}

// TotalPrice returns the sum of price times quantity over all entries.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalQuantity returns the number of copies across all entries.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Len returns the number of distinct books in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Snapshot returns a copy of the current entries in insertion order.
// Later cart mutations do not show through the copy.
func (c *Cart) Snapshot() []Line {
	snap := make([]Line, 0, len(c.seq))
	for _, id := range c.seq {
		snap = append(snap, *c.lines[id])
	}
	return snap
}
