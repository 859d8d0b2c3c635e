// file: internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — template fee per kelas / tahun ajaran
============================================== */

type FeeStructure struct {
	// PK
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`

	// Tenant
	FeeStructureSchoolID uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index" json:"fee_structure_school_id"`

	// Target kelas + periode
	FeeStructureClassID      uuid.UUID `gorm:"column:fee_structure_class_id;type:uuid;not null;index" json:"fee_structure_class_id"`
	FeeStructureAcademicYear string    `gorm:"column:fee_structure_academic_year;type:varchar(9);not null;index" json:"fee_structure_academic_year"`

	// Jenis fee (free text category: SPP, BOOK, UNIFORM, ...)
	FeeStructureFeeType string `gorm:"column:fee_structure_fee_type;type:varchar(60);not null" json:"fee_structure_fee_type"`

	// Nominal (harus > 0, dijaga juga di DTO + service)
	FeeStructureTotalAmountIDR int64 `gorm:"column:fee_structure_total_amount_idr;type:bigint;not null;check:fee_structure_total_amount_idr>0" json:"fee_structure_total_amount_idr"`

	// Jatuh tempo yang diturunkan ke setiap fee record saat inisialisasi
	FeeStructureDueDate time.Time `gorm:"column:fee_structure_due_date;type:date;not null" json:"fee_structure_due_date"`

	// Nonaktif = tidak bisa inisialisasi lagi; record lama tidak tersentuh
	FeeStructureIsActive bool `gorm:"column:fee_structure_is_active;type:boolean;not null;default:true;index" json:"fee_structure_is_active"`

	// Audit
	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;type:timestamptz;not null;default:now()" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;type:timestamptz;not null;default:now()" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeStructure) TableName() string { return "fee_structures" }

func (m *FeeStructure) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeStructureCreatedAt.IsZero() {
		m.FeeStructureCreatedAt = now
	}
	m.FeeStructureUpdatedAt = now
	return nil
}

func (m *FeeStructure) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeStructureUpdatedAt = time.Now()
	return nil
}
