package catalog

import (
	"testing"

	"ebook-store/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBook(t *testing.T, title string) *model.Book {
	t.Helper()
	book, err := model.NewBook(title, "Anon", "2024-01-01", "Programming", decimal.NewFromInt(10))
	require.NoError(t, err)
	return book
}

func titles(books []*model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestCatalog_AddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(mustBook(t, "First"))
	c.Add(mustBook(t, "Second"))
	c.Add(mustBook(t, "Third"))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(c.Books()))
}

func TestCatalog_RemoveMiddlePreservesOrder(t *testing.T) {
	first := mustBook(t, "First")
	middle := mustBook(t, "Middle")
	last := mustBook(t, "Last")

	c := New()
	c.Add(first)
	c.Add(middle)
	c.Add(last)

	c.Remove(middle)

	assert.Equal(t, []string{"First", "Last"}, titles(c.Books()))
}

func TestCatalog_RemoveAbsentIsNoop(t *testing.T) {
	kept := mustBook(t, "Kept")

	c := New()
	c.Add(kept)
	c.Remove(mustBook(t, "Never added"))

	assert.Equal(t, []string{"Kept"}, titles(c.Books()))
}

func TestCatalog_RemoveByReference(t *testing.T) {
	// Removal matches the exact book that was added, not equal fields.
	shelved := mustBook(t, "Go")
	lookalike := mustBook(t, "Go")

	c := New()
	c.Add(shelved)
	c.Remove(lookalike)

	assert.Equal(t, 1, c.Len())
}

func TestCatalog_BooksReturnsCopy(t *testing.T) {
	c := New()
	c.Add(mustBook(t, "First"))
	c.Add(mustBook(t, "Second"))

	books := c.Books()
	books[0] = nil

	assert.Equal(t, []string{"First", "Second"}, titles(c.Books()))
}
