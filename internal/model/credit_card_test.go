package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditCard_Equal(t *testing.T) {
	card1 := &CreditCard{ID: Int64(1)}
	card2 := &CreditCard{ID: card1.ID}
	assert.True(t, card1.Equal(card2))

	card2.ID = Int64(2)
	assert.False(t, card1.Equal(card2))

	card1.ID = nil
	assert.False(t, card1.Equal(card2))
}

func TestCreditCard_EqualIgnoresFields(t *testing.T) {
	a := &CreditCard{ID: Int64(7), Type: String("VISA"), Number: String("4111")}
	b := &CreditCard{ID: Int64(7), Type: String("AMEX"), Number: nil}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestCreditCard_EqualNilID(t *testing.T) {
	a := &CreditCard{Type: String("VISA")}
	b := &CreditCard{Type: String("VISA")}

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestCreditCard_String(t *testing.T) {
	card := CreditCard{ID: Int64(3), Type: String("VISA")}
	assert.Equal(t, "CreditCard{id=3, type='VISA', number='null'}", card.String())

	assert.Equal(t, "CreditCard{id=null, type='null', number='null'}", CreditCard{}.String())
}
