// file: internals/features/finance/fees/dto/fee_record_dto.go
package dto

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE RECORDS — DTO
////////////////////////////////////////////////////////////////////////////////

// Collect payment
type CollectPaymentRequest struct {
	AmountIDR   int64   `json:"amount_idr" validate:"required,gt=0"`
	PaymentMode string  `json:"payment_mode" validate:"required,oneof=cash online upi bank_transfer"`
	ReferenceID *string `json:"reference_id,omitempty" validate:"omitempty,max=100"`
}

// Query list per kelas
type ListFeeRecordQuery struct {
	Status       *string `query:"status" validate:"omitempty,oneof=unpaid partial paid overdue"`
	AcademicYear *string `query:"academic_year"`
}

// Payment entry (response)
type PaymentResponse struct {
	PaymentAmountIDR   int64     `json:"payment_amount_idr"`
	PaymentMode        string    `json:"payment_mode"`
	PaymentReferenceID *string   `json:"payment_reference_id,omitempty"`
	PaymentPaidAt      time.Time `json:"payment_paid_at"`
}

// Response
type FeeRecordResponse struct {
	FeeRecordID                 uuid.UUID             `json:"fee_record_id"`
	FeeRecordStudentID          uuid.UUID             `json:"fee_record_student_id"`
	FeeRecordStructureID        uuid.UUID             `json:"fee_record_structure_id"`
	FeeRecordClassID            uuid.UUID             `json:"fee_record_class_id"`
	FeeRecordAcademicYear       string                `json:"fee_record_academic_year"`
	FeeRecordTotalAmountIDR     int64                 `json:"fee_record_total_amount_idr"`
	FeeRecordPaidAmountIDR      int64                 `json:"fee_record_paid_amount_idr"`
	FeeRecordPendingAmountIDR   int64                 `json:"fee_record_pending_amount_idr"`
	FeeRecordLateFineAppliedIDR int64                 `json:"fee_record_late_fine_applied_idr"`
	FeeRecordDueDate            time.Time             `json:"fee_record_due_date"`
	FeeRecordStatus             model.FeeRecordStatus `json:"fee_record_status"`
	FeeRecordPaymentHistory     []PaymentResponse     `json:"fee_record_payment_history"`
	FeeRecordCreatedAt          time.Time             `json:"fee_record_created_at"`
	FeeRecordUpdatedAt          time.Time             `json:"fee_record_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

// ToFeeRecordResponse: histori ditampilkan paling-baru-dulu (storage tetap
// urutan insert; ordering untuk display adalah urusan read layer).
func ToFeeRecordResponse(m model.FeeRecord) (FeeRecordResponse, error) {
	entries, err := m.PaymentEntries()
	if err != nil {
		return FeeRecordResponse{}, err
	}

	history := make([]PaymentResponse, 0, len(entries))
	for _, p := range entries {
		history = append(history, PaymentResponse{
			PaymentAmountIDR:   p.PaymentAmountIDR,
			PaymentMode:        string(p.PaymentMode),
			PaymentReferenceID: p.PaymentReferenceID,
			PaymentPaidAt:      p.PaymentPaidAt,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PaymentPaidAt.After(history[j].PaymentPaidAt)
	})

	return FeeRecordResponse{
		FeeRecordID:                 m.FeeRecordID,
		FeeRecordStudentID:          m.FeeRecordStudentID,
		FeeRecordStructureID:        m.FeeRecordStructureID,
		FeeRecordClassID:            m.FeeRecordClassID,
		FeeRecordAcademicYear:       m.FeeRecordAcademicYear,
		FeeRecordTotalAmountIDR:     m.FeeRecordTotalAmountIDR,
		FeeRecordPaidAmountIDR:      m.FeeRecordPaidAmountIDR,
		FeeRecordPendingAmountIDR:   m.FeeRecordPendingAmountIDR,
		FeeRecordLateFineAppliedIDR: m.FeeRecordLateFineAppliedIDR,
		FeeRecordDueDate:            m.FeeRecordDueDate,
		FeeRecordStatus:             m.FeeRecordStatus,
		FeeRecordPaymentHistory:     history,
		FeeRecordCreatedAt:          m.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:          m.FeeRecordUpdatedAt,
	}, nil
}

func ToFeeRecordResponses(ms []model.FeeRecord) ([]FeeRecordResponse, error) {
	out := make([]FeeRecordResponse, 0, len(ms))
	for i := range ms {
		resp, err := ToFeeRecordResponse(ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
