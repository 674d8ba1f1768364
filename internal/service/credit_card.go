package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"cardapi/internal/logger"
	"cardapi/internal/model"
	"cardapi/internal/repository"
)

// ErrIDRequired is returned by PartialUpdate when the card carries no id.
var ErrIDRequired = errors.New("id is required")

// CreditCardService defines the use cases for managing credit cards.
type CreditCardService interface {
	// Save inserts card when it has no id, otherwise fully replaces the stored row.
	Save(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error)

	// PartialUpdate copies the non-nil fields of card onto the stored card and saves it.
	// Returns nil, nil when no card exists at card.ID.
	PartialUpdate(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error)

	// FindAll returns every card in the requested order.
	FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error)

	// FindOne returns the card with the given id, or nil, nil.
	FindOne(ctx context.Context, id int64) (*model.CreditCard, error)

	// Exists reports whether a card with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the card with the given id. Missing ids are not an error.
	Delete(ctx context.Context, id int64) error
}

// creditCardService is a concrete implementation of CreditCardService.
// It keeps no state between calls; the repository is the only source of truth.
type creditCardService struct {
	repo repository.CreditCardRepository
	log  logrus.FieldLogger
}

// NewCreditCardService constructs a new CreditCardService.
func NewCreditCardService(repo repository.CreditCardRepository, log logrus.FieldLogger) CreditCardService {
	return &creditCardService{
		repo: repo,
		log:  log.WithField("component", "credit_card_service"),
	}
}

func (s *creditCardService) Save(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	s.logger(ctx).Debugf("Request to save CreditCard : %s", card)
	if card.ID == nil {
		return s.repo.Insert(ctx, card)
	}
	return s.repo.Update(ctx, card)
}

// PartialUpdate is a read followed by a write with no lock in between;
// concurrent patches of the same id may overwrite each other.
func (s *creditCardService) PartialUpdate(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	s.logger(ctx).Debugf("Request to partially update CreditCard : %s", card)
	if card.ID == nil {
		return nil, ErrIDRequired
	}

	existing, err := s.repo.FindByID(ctx, *card.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := *existing
	if card.Type != nil {
		merged.Type = card.Type
	}
	if card.Number != nil {
		merged.Number = card.Number
	}

	saved, err := s.Save(ctx, &merged)
	if err != nil {
		// The row was deleted between the read and the write.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return saved, nil
}

func (s *creditCardService) FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error) {
	s.logger(ctx).Debug("Request to get all CreditCards")
	return s.repo.FindAll(ctx, orders)
}

func (s *creditCardService) FindOne(ctx context.Context, id int64) (*model.CreditCard, error) {
	s.logger(ctx).Debugf("Request to get CreditCard : %d", id)
	return s.repo.FindByID(ctx, id)
}

func (s *creditCardService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *creditCardService) Delete(ctx context.Context, id int64) error {
	s.logger(ctx).Debugf("Request to delete CreditCard : %d", id)
	return s.repo.DeleteByID(ctx, id)
}

func (s *creditCardService) logger(ctx context.Context) logrus.FieldLogger {
	return logger.FromContext(ctx, s.log)
}
