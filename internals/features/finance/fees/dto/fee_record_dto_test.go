package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
)

func TestToFeeRecordResponseHistoryNewestFirst(t *testing.T) {
	t1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(72 * time.Hour)
	t3 := t2.Add(24 * time.Hour)

	var rec model.FeeRecord
	rec.FeeRecordTotalAmountIDR = 9000
	rec.FeeRecordPaidAmountIDR = 9000
	rec.FeeRecordStatus = model.FeeRecordStatusPaid
	for _, p := range []model.Payment{
		{PaymentAmountIDR: 2000, PaymentMode: model.PaymentModeCash, PaymentPaidAt: t1},
		{PaymentAmountIDR: 3000, PaymentMode: model.PaymentModeUPI, PaymentPaidAt: t2},
		{PaymentAmountIDR: 4000, PaymentMode: model.PaymentModeOnline, PaymentPaidAt: t3},
	} {
		assert.NoError(t, rec.AppendPayment(p))
	}

	resp, err := ToFeeRecordResponse(rec)
	assert.NoError(t, err)
	assert.Len(t, resp.FeeRecordPaymentHistory, 3)

	// storage urutan insert, display paling-baru-dulu
	assert.EqualValues(t, 4000, resp.FeeRecordPaymentHistory[0].PaymentAmountIDR)
	assert.EqualValues(t, 3000, resp.FeeRecordPaymentHistory[1].PaymentAmountIDR)
	assert.EqualValues(t, 2000, resp.FeeRecordPaymentHistory[2].PaymentAmountIDR)
}

func TestToFeeRecordResponseEmptyHistoryIsArray(t *testing.T) {
	var rec model.FeeRecord
	resp, err := ToFeeRecordResponse(rec)
	assert.NoError(t, err)
	assert.NotNil(t, resp.FeeRecordPaymentHistory) // [] di JSON, bukan null
	assert.Empty(t, resp.FeeRecordPaymentHistory)
}

func TestCollectPaymentRequestValidation(t *testing.T) {
	v := helper.Validator()

	ok := CollectPaymentRequest{AmountIDR: 1000, PaymentMode: "cash"}
	assert.NoError(t, v.Struct(ok))

	tests := []struct {
		name string
		req  CollectPaymentRequest
	}{
		{"amount nol", CollectPaymentRequest{AmountIDR: 0, PaymentMode: "cash"}},
		{"amount negatif", CollectPaymentRequest{AmountIDR: -500, PaymentMode: "cash"}},
		{"mode kosong", CollectPaymentRequest{AmountIDR: 1000}},
		{"mode di luar enum", CollectPaymentRequest{AmountIDR: 1000, PaymentMode: "cheque"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.Struct(tt.req))
		})
	}
}
