// Package catalog holds the store's ordered collection of books.
package catalog

import "ebook-store/internal/model"

// Catalog keeps books in insertion order. Membership is by reference:
// the same *Book that was added must be passed to Remove.
type Catalog struct {
	books []*model.Book
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add appends book to the catalog.
func (c *Catalog) Add(book *model.Book) {
	c.books = append(c.books, book)
}

// Remove deletes book from the catalog, preserving the relative order
// of the remaining entries. Removing an absent book is a no-op.
func (c *Catalog) Remove(book *model.Book) {
	for i, b := range c.books {
		if b == book {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return
		}
	}
}

// Books returns the catalog contents in insertion order. The returned
// slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Books() []*model.Book {
	out := make([]*model.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}
