package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/fees/model"
)

func TestDeriveStatus(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	beforeDue := due.AddDate(0, 0, -5)
	afterDue := due.AddDate(0, 0, 5)

	tests := []struct {
		name    string
		paid    int64
		pending int64
		now     time.Time
		want    model.FeeRecordStatus
	}{
		{"lunas", 5000, 0, beforeDue, model.FeeRecordStatusPaid},
		{"lunas setelah due tetap paid", 5000, 0, afterDue, model.FeeRecordStatusPaid},
		{"belum bayar, belum due", 0, 5000, beforeDue, model.FeeRecordStatusUnpaid},
		{"belum bayar, tepat di due date", 0, 5000, due, model.FeeRecordStatusUnpaid},
		{"belum bayar, lewat due", 0, 5000, afterDue, model.FeeRecordStatusOverdue},
		{"cicilan, belum due", 2000, 3000, beforeDue, model.FeeRecordStatusPartial},
		{"cicilan, lewat due", 2000, 3000, afterDue, model.FeeRecordStatusOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.paid, tt.pending, due, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Fungsi murni: input sama → output sama, berapa kali pun dipanggil.
func TestDeriveStatusDeterministic(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := due.AddDate(0, 0, 1)
	first := DeriveStatus(1000, 4000, due, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveStatus(1000, 4000, due, now))
	}
}

func TestRefreshStatusTimeTransition(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	rec := model.FeeRecord{
		FeeRecordTotalAmountIDR:   5000,
		FeeRecordPaidAmountIDR:    0,
		FeeRecordPendingAmountIDR: 5000,
		FeeRecordDueDate:          due,
		FeeRecordStatus:           model.FeeRecordStatusUnpaid, // status saat write terakhir
	}

	// due sudah lewat tanpa ada write → read layer harus menampilkan overdue
	RefreshStatus(&rec, due.AddDate(0, 0, 3))
	assert.Equal(t, model.FeeRecordStatusOverdue, rec.FeeRecordStatus)
}
