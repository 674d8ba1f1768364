package model

import (
	"fmt"
	"strconv"
)

// CreditCard is the single persisted entity of the service.
// Every field is optional: ID stays nil until the store assigns one on insert,
// and Type/Number carry no format constraint.
type CreditCard struct {
	ID     *int64  `json:"id"`
	Type   *string `json:"type"`
	Number *string `json:"number"`
}

// Equal reports identity equality: both cards must carry a non-nil ID and the
// IDs must match. A card without an ID is never equal to any other card,
// including another card without an ID. Type and Number are ignored.
func (c *CreditCard) Equal(other *CreditCard) bool {
	if c == nil || other == nil {
		return false
	}
	if c.ID == nil || other.ID == nil {
		return false
	}
	return *c.ID == *other.ID
}

func (c CreditCard) String() string {
	id := "null"
	if c.ID != nil {
		id = strconv.FormatInt(*c.ID, 10)
	}
	return fmt.Sprintf("CreditCard{id=%s, type='%s', number='%s'}", id, deref(c.Type), deref(c.Number))
}

func deref(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
