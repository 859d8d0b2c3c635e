// file: internals/features/finance/fees/service/status.go
package service

import (
	"time"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   STATUS ENGINE — fungsi murni dari (paid, pending, due, now)
======================================================= */

// DeriveStatus menurunkan label status sebuah fee record.
// Urutan aturan:
//  1. pending == 0            → paid
//  2. lewat jatuh tempo       → overdue
//  3. sudah ada cicilan       → partial
//  4. sisanya                 → unpaid (belum due, belum bayar)
func DeriveStatus(paidIDR, pendingIDR int64, dueDate, now time.Time) model.FeeRecordStatus {
	if pendingIDR == 0 {
		return model.FeeRecordStatusPaid
	}
	if now.After(dueDate) {
		return model.FeeRecordStatusOverdue
	}
	if paidIDR > 0 {
		return model.FeeRecordStatusPartial
	}
	return model.FeeRecordStatusUnpaid
}

// RefreshStatus menimpa status tersimpan dengan hasil derive "now".
// Dipakai read layer supaya transisi unpaid/partial → overdue terlihat
// tanpa menunggu write.
func RefreshStatus(rec *model.FeeRecord, now time.Time) {
	rec.FeeRecordStatus = DeriveStatus(
		rec.FeeRecordPaidAmountIDR,
		rec.FeeRecordPendingAmountIDR,
		rec.FeeRecordDueDate,
		now,
	)
}
