// file: internals/features/school/students/service/roster_provider.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/model"
)

// RosterProvider: sumber kebenaran daftar siswa per kelas (read-only).
type RosterProvider struct {
	DB *gorm.DB
}

func NewRosterProvider(db *gorm.DB) *RosterProvider {
	return &RosterProvider{DB: db}
}

// ListStudentIDs mengembalikan id siswa aktif sebuah kelas (tenant-scoped).
func (p *RosterProvider) ListStudentIDs(ctx context.Context, schoolID, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := p.DB.WithContext(ctx).
		Model(&model.SchoolStudent{}).
		Where("school_student_school_id = ? AND school_student_class_id = ?", schoolID, classID).
		Where("school_student_status = ?", model.SchoolStudentActive).
		Pluck("school_student_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
