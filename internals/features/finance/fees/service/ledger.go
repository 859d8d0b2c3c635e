// file: internals/features/finance/fees/service/ledger.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   PAYMENT LEDGER — satu-satunya jalur masuk pembayaran
======================================================= */

type CollectInput struct {
	AmountIDR   int64
	Mode        model.PaymentMode
	ReferenceID *string
}

// Collect mencatat satu pembayaran terhadap satu fee record.
// Baca-validasi-tulis berjalan dalam satu transaksi dengan row lock
// (SELECT ... FOR UPDATE): dua collect bersamaan tidak mungkin
// sama-sama lolos validasi terhadap pending yang basi.
func (s *FeeService) Collect(ctx context.Context, schoolID, recordID uuid.UUID, in CollectInput) (*model.FeeRecord, error) {
	if in.AmountIDR <= 0 {
		return nil, &ValidationError{Field: "amount_idr", Reason: "must be greater than zero"}
	}
	if !model.ValidPaymentMode(in.Mode) {
		return nil, &ValidationError{Field: "payment_mode", Reason: "must be one of cash|online|upi|bank_transfer"}
	}
	in.Mode = model.PaymentMode(strings.ToLower(string(in.Mode)))

	// Deadlock/serialization loser di-retry sekali terhadap state segar;
	// kalau nominal masih muat ya sukses, kalau tidak → OverpaymentError.
	rec, err := s.collectOnce(ctx, schoolID, recordID, in)
	if err != nil && errors.Is(err, ErrConcurrencyConflict) {
		rec, err = s.collectOnce(ctx, schoolID, recordID, in)
		if err != nil && errors.Is(err, ErrConcurrencyConflict) {
			return nil, ErrConcurrencyConflict
		}
	}
	return rec, err
}

// applyPaymentLocked memutasi record yang sudah di-lock: append histori,
// naikkan paid, hitung ulang pending + status. Invariant yang dijaga:
// paid + pending == total + late_fine, paid tidak pernah turun.
func applyPaymentLocked(rec *model.FeeRecord, in CollectInput, now time.Time) error {
	if in.AmountIDR > rec.FeeRecordPendingAmountIDR {
		return &OverpaymentError{AmountIDR: in.AmountIDR, PendingIDR: rec.FeeRecordPendingAmountIDR}
	}

	if err := rec.AppendPayment(model.Payment{
		PaymentAmountIDR:   in.AmountIDR,
		PaymentMode:        in.Mode,
		PaymentReferenceID: in.ReferenceID,
		PaymentPaidAt:      now,
	}); err != nil {
		return err
	}

	rec.FeeRecordPaidAmountIDR += in.AmountIDR
	rec.FeeRecordPendingAmountIDR = rec.FeeRecordTotalAmountIDR + rec.FeeRecordLateFineAppliedIDR - rec.FeeRecordPaidAmountIDR
	rec.FeeRecordStatus = DeriveStatus(
		rec.FeeRecordPaidAmountIDR,
		rec.FeeRecordPendingAmountIDR,
		rec.FeeRecordDueDate,
		now,
	)
	return nil
}

func (s *FeeService) collectOnce(ctx context.Context, schoolID, recordID uuid.UUID, in CollectInput) (*model.FeeRecord, error) {
	var rec model.FeeRecord

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rec, "fee_record_id = ? AND fee_record_school_id = ?", recordID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		if err := applyPaymentLocked(&rec, in, s.now()); err != nil {
			return err
		}

		return tx.Save(&rec).Error
	})
	if err != nil {
		if isRetryablePgErr(err) {
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}
	return &rec, nil
}

// 40001 = serialization_failure, 40P01 = deadlock_detected
func isRetryablePgErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
