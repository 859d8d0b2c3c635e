// file: internals/features/finance/fees/model/late_fine_run_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* ==============================================
   MODEL — jejak eksekusi job denda keterlambatan
============================================== */

type LateFineRun struct {
	LateFineRunID uuid.UUID `gorm:"column:late_fine_run_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"late_fine_run_id"`

	// NULL = run global (scheduler); terisi = trigger manual satu sekolah
	LateFineRunSchoolID *uuid.UUID `gorm:"column:late_fine_run_school_id;type:uuid;index" json:"late_fine_run_school_id,omitempty"`

	LateFineRunStartedAt  time.Time `gorm:"column:late_fine_run_started_at;type:timestamptz;not null" json:"late_fine_run_started_at"`
	LateFineRunFinishedAt time.Time `gorm:"column:late_fine_run_finished_at;type:timestamptz;not null" json:"late_fine_run_finished_at"`

	// Nominal denda yang berlaku saat run ini
	LateFineRunFineAmountIDR int64 `gorm:"column:late_fine_run_fine_amount_idr;type:bigint;not null" json:"late_fine_run_fine_amount_idr"`

	LateFineRunRecordsFined int `gorm:"column:late_fine_run_records_fined;type:int;not null" json:"late_fine_run_records_fined"`

	// Record yang gagal dikenai denda pada run ini (job jalan terus, tidak abort)
	LateFineRunFailedRecordIDs pq.StringArray `gorm:"column:late_fine_run_failed_record_ids;type:text[]" json:"late_fine_run_failed_record_ids,omitempty"`
}

func (LateFineRun) TableName() string { return "late_fine_runs" }
