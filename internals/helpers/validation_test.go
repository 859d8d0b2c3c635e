package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Kunci error harus sama dengan nama field di payload client
// (tag json/query), bukan nama field Go.
func TestValidatorFieldNamesFollowJSONTags(t *testing.T) {
	type payload struct {
		AmountIDR   int64  `json:"amount_idr" validate:"required,gt=0"`
		PaymentMode string `json:"payment_mode" validate:"required,oneof=cash online upi bank_transfer"`
	}

	err := Validator().Struct(payload{})
	require.Error(t, err)

	ve, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	names := make([]string, 0, len(ve))
	for _, fe := range ve {
		names = append(names, fe.Field())
	}
	assert.Contains(t, names, "amount_idr")
	assert.Contains(t, names, "payment_mode")
	assert.NotContains(t, names, "AmountIDR")
}

func TestValidatorFieldNamesFollowQueryTags(t *testing.T) {
	type q struct {
		Status *string `query:"status" validate:"omitempty,oneof=unpaid partial paid overdue"`
	}
	bad := "cancelled"

	err := Validator().Struct(q{Status: &bad})
	require.Error(t, err)

	ve, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 1)
	assert.Equal(t, "status", ve[0].Field())
}
