package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardapi/internal/model"
	"cardapi/internal/repository"
)

// Compile-time interface satisfaction check.
var _ repository.CreditCardRepository = (*CreditCardRepo)(nil)

// CreditCardRepo is the SQLite implementation of repository.CreditCardRepository,
// used for local development and self-contained tests.
type CreditCardRepo struct {
	db *sql.DB
}

// NewCreditCardRepo creates a new CreditCardRepo backed by the given DB.
func NewCreditCardRepo(db *sql.DB) *CreditCardRepo {
	return &CreditCardRepo{db: db}
}

// Insert adds a row and returns it with the AUTOINCREMENT id. Ids are never reused after delete.
func (r *CreditCardRepo) Insert(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	const query = `INSERT INTO credit_card (type, number) VALUES (?, ?) RETURNING id, type, number`

	out, err := scanCreditCard(r.db.QueryRowContext(ctx, query, nullString(card.Type), nullString(card.Number)))
	if err != nil {
		return nil, fmt.Errorf("insert credit card: %w", err)
	}
	return out, nil
}

// Update replaces type and number of the row at card.ID. Returns ErrNotFound when
// no row was touched.
func (r *CreditCardRepo) Update(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	if card.ID == nil {
		return nil, fmt.Errorf("update credit card: %w", repository.ErrNotFound)
	}
	const query = `UPDATE credit_card SET type = ?, number = ? WHERE id = ? RETURNING id, type, number`

	out, err := scanCreditCard(r.db.QueryRowContext(ctx, query, nullString(card.Type), nullString(card.Number), *card.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update credit card %d: %w", *card.ID, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update credit card %d: %w", *card.ID, err)
	}
	return out, nil
}

// FindByID retrieves a card by id. Returns nil, nil if the card does not exist.
func (r *CreditCardRepo) FindByID(ctx context.Context, id int64) (*model.CreditCard, error) {
	const query = `SELECT id, type, number FROM credit_card WHERE id = ?`

	card, err := scanCreditCard(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find credit card %d: %w", id, err)
	}
	return card, nil
}

// FindAll returns all cards in the requested order.
func (r *CreditCardRepo) FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error) {
	orderBy, err := repository.OrderByClause(orders)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, type, number FROM credit_card `+orderBy)
	if err != nil {
		return nil, fmt.Errorf("list credit cards: %w", err)
	}
	defer rows.Close()

	cards := make([]model.CreditCard, 0)
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit card: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit cards: %w", err)
	}
	return cards, nil
}

// ExistsByID reports whether a row with the id exists.
func (r *CreditCardRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM credit_card WHERE id = ?)`

	var exists int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check credit card %d: %w", id, err)
	}
	return exists == 1, nil
}

// DeleteByID removes a card. Missing rows are ignored.
func (r *CreditCardRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM credit_card WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete credit card %d: %w", id, err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanCreditCard(s scanner) (*model.CreditCard, error) {
	var (
		id     int64
		typ    sql.NullString
		number sql.NullString
	)
	if err := s.Scan(&id, &typ, &number); err != nil {
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
