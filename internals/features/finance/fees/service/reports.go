// file: internals/features/finance/fees/service/reports.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   QUERY / REPORTING — read-only, status selalu derive "now"
======================================================= */

type RecordListFilter struct {
	Status       *model.FeeRecordStatus
	AcademicYear *string
}

type StatisticsScope struct {
	ClassID      *uuid.UUID
	AcademicYear *string
}

type Statistics struct {
	TotalAmountIDR   int64                           `json:"total_amount_idr"`
	PaidAmountIDR    int64                           `json:"paid_amount_idr"`
	PendingAmountIDR int64                           `json:"pending_amount_idr"`
	LateFineIDR      int64                           `json:"late_fine_idr"`
	CountsByStatus   map[model.FeeRecordStatus]int64 `json:"counts_by_status"`
}

// GetRecord mengambil satu record (status di-refresh terhadap "now").
func (s *FeeService) GetRecord(ctx context.Context, schoolID, recordID uuid.UUID) (*model.FeeRecord, error) {
	var rec model.FeeRecord
	if err := s.DB.WithContext(ctx).
		First(&rec, "fee_record_id = ? AND fee_record_school_id = ?", recordID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	RefreshStatus(&rec, s.now())
	return &rec, nil
}

// GetRecordsForStudent: semua ledger entry milik satu siswa.
func (s *FeeService) GetRecordsForStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]model.FeeRecord, error) {
	var recs []model.FeeRecord
	if err := s.DB.WithContext(ctx).
		Where("fee_record_school_id = ? AND fee_record_student_id = ?", schoolID, studentID).
		Order("fee_record_created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	now := s.now()
	for i := range recs {
		RefreshStatus(&recs[i], now)
	}
	return recs, nil
}

// ListByClass: daftar record satu kelas. Filter status diterapkan SETELAH
// derive supaya unpaid yang sudah lewat due tampil sebagai overdue.
func (s *FeeService) ListByClass(ctx context.Context, schoolID, classID uuid.UUID, f RecordListFilter) ([]model.FeeRecord, error) {
	q := s.DB.WithContext(ctx).
		Where("fee_record_school_id = ? AND fee_record_class_id = ?", schoolID, classID)
	if f.AcademicYear != nil && strings.TrimSpace(*f.AcademicYear) != "" {
		q = q.Where("fee_record_academic_year = ?", strings.TrimSpace(*f.AcademicYear))
	}

	var recs []model.FeeRecord
	if err := q.Order("fee_record_created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	now := s.now()
	out := recs[:0]
	for i := range recs {
		RefreshStatus(&recs[i], now)
		if f.Status != nil && recs[i].FeeRecordStatus != *f.Status {
			continue
		}
		out = append(out, recs[i])
	}
	return out, nil
}

// ListDefaulters: record dengan status derive overdue, atau partial
// dengan pending > 0 (definisi defaulter).
func (s *FeeService) ListDefaulters(ctx context.Context, schoolID uuid.UUID, classID *uuid.UUID) ([]model.FeeRecord, error) {
	q := s.DB.WithContext(ctx).
		Where("fee_record_school_id = ?", schoolID).
		Where("fee_record_pending_amount_idr > 0")
	if classID != nil {
		q = q.Where("fee_record_class_id = ?", *classID)
	}

	var recs []model.FeeRecord
	if err := q.Order("fee_record_due_date ASC").Find(&recs).Error; err != nil {
		return nil, err
	}

	now := s.now()
	out := recs[:0]
	for i := range recs {
		RefreshStatus(&recs[i], now)
		switch recs[i].FeeRecordStatus {
		case model.FeeRecordStatusOverdue, model.FeeRecordStatusPartial:
			out = append(out, recs[i])
		}
	}
	return out, nil
}

// Statistics: agregasi nominal + hitung per status derive pada satu scope.
// Derive dilakukan di Go dalam satu pass supaya count mengikuti "now",
// bukan status saat write terakhir.
func (s *FeeService) Statistics(ctx context.Context, schoolID uuid.UUID, scope StatisticsScope) (Statistics, error) {
	q := s.DB.WithContext(ctx).
		Model(&model.FeeRecord{}).
		Where("fee_record_school_id = ?", schoolID)
	if scope.ClassID != nil {
		q = q.Where("fee_record_class_id = ?", *scope.ClassID)
	}
	if scope.AcademicYear != nil && strings.TrimSpace(*scope.AcademicYear) != "" {
		q = q.Where("fee_record_academic_year = ?", strings.TrimSpace(*scope.AcademicYear))
	}

	var rows []model.FeeRecord
	if err := q.Select(
		"fee_record_id",
		"fee_record_total_amount_idr",
		"fee_record_paid_amount_idr",
		"fee_record_pending_amount_idr",
		"fee_record_late_fine_applied_idr",
		"fee_record_due_date",
	).Find(&rows).Error; err != nil {
		return Statistics{}, err
	}

	stats := Statistics{CountsByStatus: map[model.FeeRecordStatus]int64{}}
	now := s.now()
	for i := range rows {
		r := &rows[i]
		stats.TotalAmountIDR += r.FeeRecordTotalAmountIDR
		stats.PaidAmountIDR += r.FeeRecordPaidAmountIDR
		stats.PendingAmountIDR += r.FeeRecordPendingAmountIDR
		stats.LateFineIDR += r.FeeRecordLateFineAppliedIDR
		stats.CountsByStatus[DeriveStatus(r.FeeRecordPaidAmountIDR, r.FeeRecordPendingAmountIDR, r.FeeRecordDueDate, now)]++
	}
	return stats, nil
}
