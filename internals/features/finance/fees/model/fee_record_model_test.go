package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentEntriesEmptyHistory(t *testing.T) {
	var rec FeeRecord

	entries, err := rec.PaymentEntries()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendPaymentKeepsInsertOrder(t *testing.T) {
	var rec FeeRecord
	t1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	ref := "TRX-001"
	assert.NoError(t, rec.AppendPayment(Payment{PaymentAmountIDR: 2000, PaymentMode: PaymentModeCash, PaymentPaidAt: t1}))
	assert.NoError(t, rec.AppendPayment(Payment{PaymentAmountIDR: 3000, PaymentMode: PaymentModeUPI, PaymentReferenceID: &ref, PaymentPaidAt: t2}))

	entries, err := rec.PaymentEntries()
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// urutan insert dipertahankan, entri lama tidak tertimpa
	assert.EqualValues(t, 2000, entries[0].PaymentAmountIDR)
	assert.Equal(t, PaymentModeCash, entries[0].PaymentMode)
	assert.Nil(t, entries[0].PaymentReferenceID)
	assert.EqualValues(t, 3000, entries[1].PaymentAmountIDR)
	if assert.NotNil(t, entries[1].PaymentReferenceID) {
		assert.Equal(t, "TRX-001", *entries[1].PaymentReferenceID)
	}
	assert.True(t, entries[1].PaymentPaidAt.Equal(t2))
}

func TestValidPaymentMode(t *testing.T) {
	tests := []struct {
		mode PaymentMode
		want bool
	}{
		{PaymentModeCash, true},
		{PaymentModeOnline, true},
		{PaymentModeUPI, true},
		{PaymentModeBankTransfer, true},
		{"CASH", true}, // case-insensitive
		{"Bank_Transfer", true},
		{"cheque", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPaymentMode(tt.mode), "mode=%q", tt.mode)
	}
}
