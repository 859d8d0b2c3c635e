// file: internals/features/finance/fees/service/service.go
package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterProvider: kolaborator eksternal (modul siswa) — fee ledger hanya membaca.
type RosterProvider interface {
	ListStudentIDs(ctx context.Context, schoolID, classID uuid.UUID) ([]uuid.UUID, error)
}

// FeeService: satu-satunya penulis fee_records (bersama job denda di bawahnya).
type FeeService struct {
	DB     *gorm.DB
	Roster RosterProvider

	// now di-inject supaya derive status bisa diuji deterministik
	now func() time.Time

	// guard single-flight job denda; trigger kedua saat run berjalan = no-op
	lateFineInFlight atomic.Bool
}

func NewFeeService(db *gorm.DB, roster RosterProvider) *FeeService {
	return &FeeService{
		DB:     db,
		Roster: roster,
		now:    time.Now,
	}
}

// WithNow mengganti sumber waktu (dipakai test).
func (s *FeeService) WithNow(now func() time.Time) *FeeService {
	s.now = now
	return s
}
