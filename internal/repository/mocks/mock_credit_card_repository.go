package mocks

import (
	"context"

	"cardapi/internal/model"
	"cardapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCreditCardRepository struct {
	mock.Mock
}

func (m *MockCreditCardRepository) Insert(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.CreditCard) *model.CreditCard); ok {
		return fn(ctx, card), args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) Update(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.CreditCard) *model.CreditCard); ok {
		return fn(ctx, card), args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) FindByID(ctx context.Context, id int64) (*model.CreditCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error) {
	args := m.Called(ctx, orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditCardRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
