// file: internals/features/finance/fees/service/late_fine.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   LATE-FINE APPLIER — denda sekali per periode jatuh tempo
======================================================= */

type LateFineRunSummary struct {
	AlreadyRunning  bool     `json:"already_running"`
	RecordsFined    int      `json:"records_fined"`
	FailedRecordIDs []string `json:"failed_record_ids,omitempty"`
}

// ApplyLateFines mengenakan denda ke semua record overdue yang belum
// didenda untuk periode due date-nya. Marker fee_record_late_fine_due_date
// membuat operasi idempotent per periode: run ulang = no-op.
// schoolID nil = run global (scheduler); non-nil = kandidat dan ringkasan
// dibatasi satu tenant (trigger manual admin sekolah).
// Gagal di satu record tidak membatalkan batch; ringkasannya dicatat
// sebagai baris late_fine_runs.
func (s *FeeService) ApplyLateFines(ctx context.Context, schoolID *uuid.UUID) (LateFineRunSummary, error) {
	// single-flight: trigger kedua saat run masih jalan harus no-op
	if !s.lateFineInFlight.CompareAndSwap(false, true) {
		return LateFineRunSummary{AlreadyRunning: true}, nil
	}
	defer s.lateFineInFlight.Store(false)

	fineIDR := int64(configs.GetEnvInt("LATE_FINE_AMOUNT_IDR", 50000))
	now := s.now()
	startedAt := now

	// Kandidat: masih ada tunggakan, sudah lewat due, dan due date-nya
	// belum pernah dikenai denda (IS DISTINCT FROM menangani NULL marker).
	q := s.DB.WithContext(ctx).
		Model(&model.FeeRecord{}).
		Where("fee_record_pending_amount_idr > 0").
		Where("fee_record_due_date < ?", now).
		Where("fee_record_late_fine_due_date IS DISTINCT FROM fee_record_due_date")
	if schoolID != nil {
		q = q.Where("fee_record_school_id = ?", *schoolID)
	}

	var candidateIDs []uuid.UUID
	if err := q.Pluck("fee_record_id", &candidateIDs).Error; err != nil {
		return LateFineRunSummary{}, err
	}

	summary := LateFineRunSummary{}
	for _, id := range candidateIDs {
		if err := s.applyFineToRecord(ctx, id, fineIDR); err != nil {
			log.Printf("[LATE-FINE ERROR] record=%s: %v", id, err)
			summary.FailedRecordIDs = append(summary.FailedRecordIDs, id.String())
			continue
		}
		summary.RecordsFined++
	}

	run := model.LateFineRun{
		LateFineRunSchoolID:        schoolID,
		LateFineRunStartedAt:       startedAt,
		LateFineRunFinishedAt:      s.now(),
		LateFineRunFineAmountIDR:   fineIDR,
		LateFineRunRecordsFined:    summary.RecordsFined,
		LateFineRunFailedRecordIDs: pq.StringArray(summary.FailedRecordIDs),
	}
	if err := s.DB.WithContext(ctx).Create(&run).Error; err != nil {
		log.Printf("[LATE-FINE ERROR] gagal simpan ringkasan run: %v", err)
	}

	return summary, nil
}

func (s *FeeService) applyFineToRecord(ctx context.Context, recordID uuid.UUID, fineIDR int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.FeeRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rec, "fee_record_id = ?", recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		// Re-check di bawah lock: record bisa saja lunas / sudah didenda
		// di antara pluck kandidat dan transaksi ini.
		if !applyFineLocked(&rec, fineIDR, s.now()) {
			return nil
		}

		return tx.Save(&rec).Error
	})
}

// applyFineLocked memutasi record yang sudah di-lock. Return false kalau
// record tidak memenuhi syarat (lunas, belum due, atau periode due date
// ini sudah pernah didenda — idempotent per periode lewat marker).
func applyFineLocked(rec *model.FeeRecord, fineIDR int64, now time.Time) bool {
	if rec.FeeRecordPendingAmountIDR <= 0 || !now.After(rec.FeeRecordDueDate) {
		return false
	}
	if rec.FeeRecordLateFineDueDate != nil && rec.FeeRecordLateFineDueDate.Equal(rec.FeeRecordDueDate) {
		return false
	}

	due := rec.FeeRecordDueDate
	rec.FeeRecordLateFineAppliedIDR += fineIDR
	rec.FeeRecordLateFineDueDate = &due
	rec.FeeRecordPendingAmountIDR = rec.FeeRecordTotalAmountIDR + rec.FeeRecordLateFineAppliedIDR - rec.FeeRecordPaidAmountIDR
	rec.FeeRecordStatus = DeriveStatus(
		rec.FeeRecordPaidAmountIDR,
		rec.FeeRecordPendingAmountIDR,
		rec.FeeRecordDueDate,
		now,
	)
	return true
}
