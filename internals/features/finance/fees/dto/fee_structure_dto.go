// file: internals/features/finance/fees/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE STRUCTURES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type FeeStructureCreateDTO struct {
	FeeStructureClassID        uuid.UUID `json:"fee_structure_class_id" validate:"required"`
	FeeStructureAcademicYear   string    `json:"fee_structure_academic_year" validate:"required,min=4,max=9"` // "2024-2025"
	FeeStructureFeeType        string    `json:"fee_structure_fee_type" validate:"required,max=60"`
	FeeStructureTotalAmountIDR int64     `json:"fee_structure_total_amount_idr" validate:"required,gt=0"`
	FeeStructureDueDate        time.Time `json:"fee_structure_due_date" validate:"required"`
}

// Update (partial) — nominal boleh diubah, tapi tidak pernah mengalir
// ke record yang sudah diinisialisasi (record menyalin saat create).
type FeeStructureUpdateDTO struct {
	FeeStructureFeeType        *string    `json:"fee_structure_fee_type,omitempty" validate:"omitempty,max=60"`
	FeeStructureTotalAmountIDR *int64     `json:"fee_structure_total_amount_idr,omitempty" validate:"omitempty,gt=0"`
	FeeStructureDueDate        *time.Time `json:"fee_structure_due_date,omitempty"`
}

// Query list
type ListFeeStructureQuery struct {
	ClassID      *uuid.UUID `query:"class_id"`
	IsActive     *bool      `query:"is_active"`
	AcademicYear *string    `query:"academic_year"`
}

// Response
type FeeStructureResponse struct {
	FeeStructureID             uuid.UUID `json:"fee_structure_id"`
	FeeStructureSchoolID       uuid.UUID `json:"fee_structure_school_id"`
	FeeStructureClassID        uuid.UUID `json:"fee_structure_class_id"`
	FeeStructureAcademicYear   string    `json:"fee_structure_academic_year"`
	FeeStructureFeeType        string    `json:"fee_structure_fee_type"`
	FeeStructureTotalAmountIDR int64     `json:"fee_structure_total_amount_idr"`
	FeeStructureDueDate        time.Time `json:"fee_structure_due_date"`
	FeeStructureIsActive       bool      `json:"fee_structure_is_active"`
	FeeStructureCreatedAt      time.Time `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt      time.Time `json:"fee_structure_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func FeeStructureCreateDTOToModel(in FeeStructureCreateDTO, schoolID uuid.UUID) model.FeeStructure {
	return model.FeeStructure{
		FeeStructureSchoolID:       schoolID,
		FeeStructureClassID:        in.FeeStructureClassID,
		FeeStructureAcademicYear:   in.FeeStructureAcademicYear,
		FeeStructureFeeType:        in.FeeStructureFeeType,
		FeeStructureTotalAmountIDR: in.FeeStructureTotalAmountIDR,
		FeeStructureDueDate:        in.FeeStructureDueDate,
		FeeStructureIsActive:       true,
	}
}

func ApplyFeeStructureUpdate(m *model.FeeStructure, in FeeStructureUpdateDTO) {
	if in.FeeStructureFeeType != nil {
		m.FeeStructureFeeType = *in.FeeStructureFeeType
	}
	if in.FeeStructureTotalAmountIDR != nil {
		m.FeeStructureTotalAmountIDR = *in.FeeStructureTotalAmountIDR
	}
	if in.FeeStructureDueDate != nil {
		m.FeeStructureDueDate = *in.FeeStructureDueDate
	}
}

func ToFeeStructureResponse(m model.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:             m.FeeStructureID,
		FeeStructureSchoolID:       m.FeeStructureSchoolID,
		FeeStructureClassID:        m.FeeStructureClassID,
		FeeStructureAcademicYear:   m.FeeStructureAcademicYear,
		FeeStructureFeeType:        m.FeeStructureFeeType,
		FeeStructureTotalAmountIDR: m.FeeStructureTotalAmountIDR,
		FeeStructureDueDate:        m.FeeStructureDueDate,
		FeeStructureIsActive:       m.FeeStructureIsActive,
		FeeStructureCreatedAt:      m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:      m.FeeStructureUpdatedAt,
	}
}
