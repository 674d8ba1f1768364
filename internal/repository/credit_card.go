package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cardapi/internal/model"
)

var (
	// ErrNotFound is returned by Update when no row exists at the card's id.
	ErrNotFound = errors.New("credit card not found")
	// ErrInvalidSortField is returned when an Order names a column outside the credit_card table.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// CreditCardRepository defines data access for credit cards.
// Persistence only, keyed by the store-generated id.
type CreditCardRepository interface {
	// Insert stores a new card and returns it with the id assigned by the database.
	// Any id already set on card is ignored.
	Insert(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error)

	// Update overwrites every column of the row at card.ID.
	// Returns ErrNotFound when the row does not exist.
	Update(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error)

	// FindByID returns the card with the given id, or nil, nil if it does not exist.
	FindByID(ctx context.Context, id int64) (*model.CreditCard, error)

	// FindAll returns every card sorted by orders (primary key order when empty).
	FindAll(ctx context.Context, orders []Order) ([]model.CreditCard, error)

	// ExistsByID reports whether a row with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes the row with the given id. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// Order is one ORDER BY term.
type Order struct {
	Field string
	Desc  bool
}

var sortableColumns = map[string]struct{}{
	"id":     {},
	"type":   {},
	"number": {},
}

// ParseOrder parses a "field[,asc|desc]" sort expression.
func ParseOrder(expr string) (Order, error) {
	field, dir, _ := strings.Cut(expr, ",")
	o := Order{Field: strings.TrimSpace(field)}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
	case "desc":
		o.Desc = true
	default:
		return Order{}, fmt.Errorf("%w: direction %q", ErrInvalidSortField, dir)
	}
	if _, ok := sortableColumns[o.Field]; !ok {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSortField, o.Field)
	}
	return o, nil
}

// OrderByClause renders orders as an ORDER BY clause.
// Column names are checked against the credit_card columns, never interpolated from raw input.
func OrderByClause(orders []Order) (string, error) {
	if len(orders) == 0 {
		return "ORDER BY id ASC", nil
	}
	terms := make([]string, 0, len(orders))
	for _, o := range orders {
		if _, ok := sortableColumns[o.Field]; !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidSortField, o.Field)
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		terms = append(terms, o.Field+" "+dir)
	}
	return "ORDER BY " + strings.Join(terms, ", "), nil
}
