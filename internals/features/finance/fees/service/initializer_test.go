package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

/* =======================================================
   Test harness — gorm di atas sqlmock (tanpa Postgres asli)
======================================================= */

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

type stubRoster struct {
	ids []uuid.UUID
}

func (r stubRoster) ListStudentIDs(ctx context.Context, schoolID, classID uuid.UUID) ([]uuid.UUID, error) {
	return r.ids, nil
}

func expectStructureSelect(mock sqlmock.Sqlmock, structureID, schoolID, classID uuid.UUID, active bool) {
	rows := sqlmock.NewRows([]string{
		"fee_structure_id",
		"fee_structure_school_id",
		"fee_structure_class_id",
		"fee_structure_academic_year",
		"fee_structure_fee_type",
		"fee_structure_total_amount_idr",
		"fee_structure_due_date",
		"fee_structure_is_active",
	}).AddRow(
		structureID.String(),
		schoolID.String(),
		classID.String(),
		"2025/2026",
		"SPP",
		int64(500000),
		time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		active,
	)
	mock.ExpectQuery(`SELECT (.+) FROM "fee_structures"`).WillReturnRows(rows)
}

/* =======================================================
   Initialize — idempotensi created/skipped
======================================================= */

// Run pertama: semua siswa dapat record (ON CONFLICT mengembalikan PK
// untuk baris yang benar-benar ter-insert).
func TestInitializeCreatesRecordForEveryStudent(t *testing.T) {
	db, mock := newMockDB(t)
	structureID, schoolID, classID := uuid.New(), uuid.New(), uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	expectStructureSelect(mock, structureID, schoolID, classID, true)
	mock.ExpectBegin()
	for range students {
		mock.ExpectQuery(`INSERT INTO "fee_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}).AddRow(uuid.NewString()))
	}
	mock.ExpectCommit()

	svc := NewFeeService(db, stubRoster{ids: students})
	res, err := svc.Initialize(context.Background(), schoolID, structureID)
	require.NoError(t, err)
	assert.Equal(t, 3, res.CreatedCount)
	assert.Equal(t, 0, res.SkippedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Run kedua: DO NOTHING tidak mengembalikan baris → PK tetap kosong →
// semua dihitung skipped, tidak ada tagihan dobel.
func TestInitializeSecondRunSkipsExisting(t *testing.T) {
	db, mock := newMockDB(t)
	structureID, schoolID, classID := uuid.New(), uuid.New(), uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	expectStructureSelect(mock, structureID, schoolID, classID, true)
	mock.ExpectBegin()
	for range students {
		mock.ExpectQuery(`INSERT INTO "fee_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}))
	}
	mock.ExpectCommit()

	svc := NewFeeService(db, stubRoster{ids: students})
	res, err := svc.Initialize(context.Background(), schoolID, structureID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CreatedCount)
	assert.Equal(t, 3, res.SkippedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Campuran: siswa baru masuk kelas setelah run pertama — hanya dia yang
// dapat record baru.
func TestInitializePartialRunCountsMixed(t *testing.T) {
	db, mock := newMockDB(t)
	structureID, schoolID, classID := uuid.New(), uuid.New(), uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New()}

	expectStructureSelect(mock, structureID, schoolID, classID, true)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"})) // sudah ada
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}).AddRow(uuid.NewString())) // baru
	mock.ExpectCommit()

	svc := NewFeeService(db, stubRoster{ids: students})
	res, err := svc.Initialize(context.Background(), schoolID, structureID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CreatedCount)
	assert.Equal(t, 1, res.SkippedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeRejectsInactiveStructure(t *testing.T) {
	db, mock := newMockDB(t)
	structureID, schoolID, classID := uuid.New(), uuid.New(), uuid.New()

	expectStructureSelect(mock, structureID, schoolID, classID, false)

	svc := NewFeeService(db, stubRoster{ids: []uuid.UUID{uuid.New()}})
	_, err := svc.Initialize(context.Background(), schoolID, structureID)
	assert.ErrorIs(t, err, ErrInactiveStructure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeStructureNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "fee_structures"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_structure_id"}))

	svc := NewFeeService(db, stubRoster{})
	_, err := svc.Initialize(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrStructureNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Roster kosong: tidak ada transaksi sama sekali, hasil 0/0.
func TestInitializeEmptyRosterIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	structureID, schoolID, classID := uuid.New(), uuid.New(), uuid.New()

	expectStructureSelect(mock, structureID, schoolID, classID, true)

	svc := NewFeeService(db, stubRoster{})
	res, err := svc.Initialize(context.Background(), schoolID, structureID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CreatedCount)
	assert.Equal(t, 0, res.SkippedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
