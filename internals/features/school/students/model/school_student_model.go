// file: internals/features/school/students/model/school_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =======================================
// ENUM
// =======================================

type SchoolStudentStatus string

const (
	SchoolStudentActive   SchoolStudentStatus = "active"
	SchoolStudentInactive SchoolStudentStatus = "inactive"
	SchoolStudentAlumni   SchoolStudentStatus = "alumni"
)

// =======================================
// Model: school_students
// Roster dikelola modul lain; fee ledger hanya membaca.
// =======================================

type SchoolStudent struct {
	SchoolStudentID uuid.UUID `gorm:"column:school_student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_student_id"`

	SchoolStudentSchoolID uuid.UUID `gorm:"column:school_student_school_id;type:uuid;not null;index" json:"school_student_school_id"`
	SchoolStudentUserID   uuid.UUID `gorm:"column:school_student_user_id;type:uuid;not null;index" json:"school_student_user_id"`
	SchoolStudentClassID  uuid.UUID `gorm:"column:school_student_class_id;type:uuid;not null;index" json:"school_student_class_id"`

	SchoolStudentCode *string `gorm:"column:school_student_code;type:varchar(30)" json:"school_student_code,omitempty"`
	SchoolStudentName string  `gorm:"column:school_student_name;type:text;not null" json:"school_student_name"`

	SchoolStudentStatus SchoolStudentStatus `gorm:"column:school_student_status;type:varchar(20);not null;default:'active';index" json:"school_student_status"`

	SchoolStudentCreatedAt time.Time      `gorm:"column:school_student_created_at;type:timestamptz;not null;default:now()" json:"school_student_created_at"`
	SchoolStudentUpdatedAt time.Time      `gorm:"column:school_student_updated_at;type:timestamptz;not null;default:now()" json:"school_student_updated_at"`
	SchoolStudentDeletedAt gorm.DeletedAt `gorm:"column:school_student_deleted_at;type:timestamptz;index" json:"-"`
}

func (SchoolStudent) TableName() string { return "school_students" }
