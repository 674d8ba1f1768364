package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardapi/internal/model"
	"cardapi/internal/repository"
)

// CreditCardPostgres is a PostgreSQL implementation of repository.CreditCardRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CreditCardPostgres struct {
	db *sql.DB
}

// NewCreditCardPostgres creates a new CreditCardPostgres repository.
func NewCreditCardPostgres(db *sql.DB) *CreditCardPostgres {
	return &CreditCardPostgres{db: db}
}

var _ repository.CreditCardRepository = (*CreditCardPostgres)(nil)

// Insert adds a row and returns it with the id generated by the BIGSERIAL column.
func (r *CreditCardPostgres) Insert(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	const q = `
		INSERT INTO credit_card (type, number)
		VALUES ($1, $2)
		RETURNING id, type, number
	`
	out, err := scanCreditCard(r.db.QueryRowContext(ctx, q, card.Type, card.Number))
	if err != nil {
		return nil, fmt.Errorf("insert credit card: %w", err)
	}
	return out, nil
}

// Update replaces type and number of the row at card.ID.
func (r *CreditCardPostgres) Update(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	if card.ID == nil {
		return nil, fmt.Errorf("update credit card: %w", repository.ErrNotFound)
	}
	const q = `
		UPDATE credit_card
		SET type = $1, number = $2
		WHERE id = $3
		RETURNING id, type, number
	`
	out, err := scanCreditCard(r.db.QueryRowContext(ctx, q, card.Type, card.Number, *card.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update credit card %d: %w", *card.ID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("update credit card %d: %w", *card.ID, err)
	}
	return out, nil
}

// FindByID fetches a single card. A missing row yields nil, nil.
func (r *CreditCardPostgres) FindByID(ctx context.Context, id int64) (*model.CreditCard, error) {
	const q = `
		SELECT id, type, number
		FROM credit_card
		WHERE id = $1
	`
	card, err := scanCreditCard(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credit card %d: %w", id, err)
	}
	return card, nil
}

// FindAll returns all cards in the requested order.
func (r *CreditCardPostgres) FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error) {
	orderBy, err := repository.OrderByClause(orders)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, type, number FROM credit_card `+orderBy)
	if err != nil {
		return nil, fmt.Errorf("list credit cards: %w", err)
	}
	defer rows.Close()

	items := make([]model.CreditCard, 0)
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit card: %w", err)
		}
		items = append(items, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit cards: %w", err)
	}
	return items, nil
}

// ExistsByID reports whether a row with the id exists.
func (r *CreditCardPostgres) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM credit_card WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check credit card %d: %w", id, err)
	}
	return exists, nil
}

// DeleteByID removes a card by id. It does not return an error if the row does not exist.
func (r *CreditCardPostgres) DeleteByID(ctx context.Context, id int64) error {
	const q = `DELETE FROM credit_card WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("delete credit card %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCreditCard(row rowScanner) (*model.CreditCard, error) {
	var (
		id     int64
		typ    sql.NullString
		number sql.NullString
	)
	if err := row.Scan(&id, &typ, &number); err != nil {
		return nil, err
	}
	card := &model.CreditCard{ID: &id}
	if typ.Valid {
		card.Type = &typ.String
	}
	if number.Valid {
		card.Number = &number.String
	}
	return card, nil
}
