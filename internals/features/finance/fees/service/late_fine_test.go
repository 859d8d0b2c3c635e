package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
)

func TestApplyFineOncePerDuePeriod(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := due.AddDate(0, 0, 7)
	rec := newTestRecord(5000, due)

	// run pertama: denda masuk
	assert.True(t, applyFineLocked(&rec, 500, now))
	assert.EqualValues(t, 500, rec.FeeRecordLateFineAppliedIDR)
	assert.EqualValues(t, 5500, rec.FeeRecordPendingAmountIDR)
	assert.Equal(t, model.FeeRecordStatusOverdue, rec.FeeRecordStatus)
	if assert.NotNil(t, rec.FeeRecordLateFineDueDate) {
		assert.True(t, rec.FeeRecordLateFineDueDate.Equal(due))
	}
	assertConservation(t, &rec)

	// run kedua di periode yang sama: no-op lewat marker
	assert.False(t, applyFineLocked(&rec, 500, now.AddDate(0, 0, 1)))
	assert.EqualValues(t, 500, rec.FeeRecordLateFineAppliedIDR)
	assert.EqualValues(t, 5500, rec.FeeRecordPendingAmountIDR)
}

func TestApplyFineSkipsPaidRecord(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rec := newTestRecord(5000, due)
	rec.FeeRecordPaidAmountIDR = 5000
	rec.FeeRecordPendingAmountIDR = 0
	rec.FeeRecordStatus = model.FeeRecordStatusPaid

	assert.False(t, applyFineLocked(&rec, 500, due.AddDate(0, 0, 7)))
	assert.EqualValues(t, 0, rec.FeeRecordLateFineAppliedIDR)
	assert.Nil(t, rec.FeeRecordLateFineDueDate)
}

func TestApplyFineSkipsNotYetDue(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rec := newTestRecord(5000, due)

	// belum lewat due, termasuk tepat di due date
	assert.False(t, applyFineLocked(&rec, 500, due.AddDate(0, 0, -1)))
	assert.False(t, applyFineLocked(&rec, 500, due))
	assert.EqualValues(t, 0, rec.FeeRecordLateFineAppliedIDR)
}

// Due date berubah (mis. perpanjangan) → periode baru boleh didenda lagi.
func TestApplyFineNewPeriodAfterDueDateChange(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rec := newTestRecord(5000, due)

	assert.True(t, applyFineLocked(&rec, 500, due.AddDate(0, 0, 7)))

	newDue := due.AddDate(0, 1, 0)
	rec.FeeRecordDueDate = newDue

	assert.True(t, applyFineLocked(&rec, 500, newDue.AddDate(0, 0, 3)))
	assert.EqualValues(t, 1000, rec.FeeRecordLateFineAppliedIDR)
	assert.EqualValues(t, 6000, rec.FeeRecordPendingAmountIDR)
	assertConservation(t, &rec)
}

// Trigger manual admin: kandidat dibatasi sekolahnya — record sekolah
// lain tidak ikut terdenda dan tidak bocor di ringkasan.
func TestApplyLateFinesScopedToSchool(t *testing.T) {
	db, mock := newMockDB(t)
	schoolID := uuid.New()

	mock.ExpectQuery(`SELECT "fee_record_id" FROM "fee_records" WHERE (.+)fee_record_late_fine_due_date IS DISTINCT FROM fee_record_due_date AND fee_record_school_id = \$2`).
		WithArgs(sqlmock.AnyArg(), schoolID).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "late_fine_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"late_fine_run_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	svc := NewFeeService(db, stubRoster{})
	summary, err := svc.ApplyLateFines(context.Background(), &schoolID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.RecordsFined)
	assert.Empty(t, summary.FailedRecordIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Run scheduler (scope nil): query kandidat lintas semua sekolah.
func TestApplyLateFinesGlobalRunHasNoSchoolFilter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "fee_record_id" FROM "fee_records" WHERE (.+)fee_record_late_fine_due_date IS DISTINCT FROM fee_record_due_date$`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "late_fine_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"late_fine_run_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	svc := NewFeeService(db, stubRoster{})
	summary, err := svc.ApplyLateFines(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.RecordsFined)
	assert.NoError(t, mock.ExpectationsWereMet())
}
