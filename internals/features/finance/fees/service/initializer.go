// file: internals/features/finance/fees/service/initializer.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   INITIALIZER — expand structure → 1 fee record per siswa
======================================================= */

type InitializeResult struct {
	CreatedCount int `json:"created_count"`
	SkippedCount int `json:"skipped_count"`
}

// Initialize membuat fee record untuk semua siswa kelas structure tsb.
// Idempotent: siswa yang sudah punya record untuk structure ini di-skip
// lewat ON CONFLICT DO NOTHING pada unique (student_id, structure_id),
// bukan check-then-insert — aman terhadap dua inisialisasi bersamaan.
func (s *FeeService) Initialize(ctx context.Context, schoolID, structureID uuid.UUID) (InitializeResult, error) {
	var res InitializeResult

	var structure model.FeeStructure
	if err := s.DB.WithContext(ctx).First(&structure,
		"fee_structure_id = ? AND fee_structure_school_id = ?",
		structureID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrStructureNotFound
		}
		return res, err
	}
	if !structure.FeeStructureIsActive {
		return res, ErrInactiveStructure
	}

	studentIDs, err := s.Roster.ListStudentIDs(ctx, schoolID, structure.FeeStructureClassID)
	if err != nil {
		return res, err
	}
	if len(studentIDs) == 0 {
		return res, nil
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sid := range studentIDs {
			rec := model.FeeRecord{
				FeeRecordSchoolID:         schoolID,
				FeeRecordStudentID:        sid,
				FeeRecordStructureID:      structure.FeeStructureID,
				FeeRecordClassID:          structure.FeeStructureClassID,
				FeeRecordAcademicYear:     structure.FeeStructureAcademicYear,
				FeeRecordTotalAmountIDR:   structure.FeeStructureTotalAmountIDR,
				FeeRecordPaidAmountIDR:    0,
				FeeRecordPendingAmountIDR: structure.FeeStructureTotalAmountIDR,
				FeeRecordDueDate:          structure.FeeStructureDueDate,
				FeeRecordStatus:           model.FeeRecordStatusUnpaid,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "fee_record_student_id"}, {Name: "fee_record_structure_id"}},
				DoNothing: true,
			}).Create(&rec).Error; err != nil {
				return err
			}
			// PK terisi hanya kalau baris benar-benar ter-insert
			if rec.FeeRecordID != uuid.Nil {
				res.CreatedCount++
			} else {
				res.SkippedCount++
			}
		}
		return nil
	})
	if err != nil {
		return InitializeResult{}, err
	}
	return res, nil
}
