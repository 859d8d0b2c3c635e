// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status fee record
============================== */

type FeeRecordStatus string

const (
	FeeRecordStatusUnpaid  FeeRecordStatus = "unpaid"
	FeeRecordStatusPartial FeeRecordStatus = "partial"
	FeeRecordStatusPaid    FeeRecordStatus = "paid"
	FeeRecordStatusOverdue FeeRecordStatus = "overdue"
)

/* ==============================
   ENUM — metode pembayaran
============================== */

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeOnline       PaymentMode = "online"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
)

func ValidPaymentMode(m PaymentMode) bool {
	switch PaymentMode(strings.ToLower(string(m))) {
	case PaymentModeCash, PaymentModeOnline, PaymentModeUPI, PaymentModeBankTransfer:
		return true
	}
	return false
}

/* ==============================
   Payment — entri histori (immutable, append-only)
============================== */

type Payment struct {
	PaymentAmountIDR   int64       `json:"payment_amount_idr"`
	PaymentMode        PaymentMode `json:"payment_mode"`
	PaymentReferenceID *string     `json:"payment_reference_id,omitempty"`
	PaymentPaidAt      time.Time   `json:"payment_paid_at"`
}

/* ==============================================
   MODEL — ledger entry per (student, structure)
============================================== */

type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_record_id"`

	// Tenant
	FeeRecordSchoolID uuid.UUID `gorm:"column:fee_record_school_id;type:uuid;not null;index" json:"fee_record_school_id"`

	// Subject + sumber (unik per pasangan — anti double billing)
	FeeRecordStudentID   uuid.UUID `gorm:"column:fee_record_student_id;type:uuid;not null;index;uniqueIndex:uniq_fee_record_student_structure,priority:1" json:"fee_record_student_id"`
	FeeRecordStructureID uuid.UUID `gorm:"column:fee_record_structure_id;type:uuid;not null;index;uniqueIndex:uniq_fee_record_student_structure,priority:2" json:"fee_record_structure_id"`

	// Snapshot konteks saat inisialisasi
	FeeRecordClassID      uuid.UUID `gorm:"column:fee_record_class_id;type:uuid;not null;index" json:"fee_record_class_id"`
	FeeRecordAcademicYear string    `gorm:"column:fee_record_academic_year;type:varchar(9);not null;index" json:"fee_record_academic_year"`

	// Amounts (IDR). total dicopy dari structure saat create, immutable setelahnya.
	// Invariant: paid + pending == total + late_fine, paid tidak pernah turun.
	FeeRecordTotalAmountIDR     int64 `gorm:"column:fee_record_total_amount_idr;type:bigint;not null" json:"fee_record_total_amount_idr"`
	FeeRecordPaidAmountIDR      int64 `gorm:"column:fee_record_paid_amount_idr;type:bigint;not null;default:0" json:"fee_record_paid_amount_idr"`
	FeeRecordPendingAmountIDR   int64 `gorm:"column:fee_record_pending_amount_idr;type:bigint;not null" json:"fee_record_pending_amount_idr"`
	FeeRecordLateFineAppliedIDR int64 `gorm:"column:fee_record_late_fine_applied_idr;type:bigint;not null;default:0" json:"fee_record_late_fine_applied_idr"`

	// Marker periode denda: due date yang sudah dikenai denda (idempotensi per periode)
	FeeRecordLateFineDueDate *time.Time `gorm:"column:fee_record_late_fine_due_date;type:date" json:"fee_record_late_fine_due_date,omitempty"`

	// Jatuh tempo
	FeeRecordDueDate time.Time `gorm:"column:fee_record_due_date;type:date;not null;index" json:"fee_record_due_date"`

	// Status tersimpan (hasil derive terakhir saat write; read layer re-derive untuk "now")
	FeeRecordStatus FeeRecordStatus `gorm:"column:fee_record_status;type:varchar(20);not null;default:'unpaid';index" json:"fee_record_status"`

	// Histori pembayaran inline (append-only, urutan insert)
	FeeRecordPaymentHistory datatypes.JSON `gorm:"column:fee_record_payment_history;type:jsonb;not null;default:'[]'" json:"fee_record_payment_history"`

	// Audit (record finansial: tidak pernah dihapus)
	FeeRecordCreatedAt time.Time `gorm:"column:fee_record_created_at;type:timestamptz;not null;default:now();index" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time `gorm:"column:fee_record_updated_at;type:timestamptz;not null;default:now()" json:"fee_record_updated_at"`
}

func (FeeRecord) TableName() string { return "fee_records" }

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeRecordCreatedAt.IsZero() {
		m.FeeRecordCreatedAt = now
	}
	m.FeeRecordUpdatedAt = now
	if len(m.FeeRecordPaymentHistory) == 0 {
		m.FeeRecordPaymentHistory = datatypes.JSON([]byte("[]"))
	}
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeRecordUpdatedAt = time.Now()
	return nil
}

/* ==============================
   Histori — decode & append
============================== */

// PaymentEntries men-decode histori JSONB ke slice Payment (urutan insert).
func (m *FeeRecord) PaymentEntries() ([]Payment, error) {
	if len(m.FeeRecordPaymentHistory) == 0 {
		return []Payment{}, nil
	}
	var out []Payment
	if err := json.Unmarshal(m.FeeRecordPaymentHistory, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendPayment menambahkan satu entri ke ujung histori (tidak pernah menimpa).
func (m *FeeRecord) AppendPayment(p Payment) error {
	entries, err := m.PaymentEntries()
	if err != nil {
		return err
	}
	entries = append(entries, p)
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.FeeRecordPaymentHistory = datatypes.JSON(raw)
	return nil
}
