package mocks

import (
	"context"

	"cardapi/internal/model"
	"cardapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCreditCardService struct {
	mock.Mock
}

func (m *MockCreditCardService) Save(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) PartialUpdate(ctx context.Context, card *model.CreditCard) (*model.CreditCard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) FindAll(ctx context.Context, orders []repository.Order) ([]model.CreditCard, error) {
	args := m.Called(ctx, orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) FindOne(ctx context.Context, id int64) (*model.CreditCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditCardService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
