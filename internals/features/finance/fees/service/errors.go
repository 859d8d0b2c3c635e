// file: internals/features/finance/fees/service/errors.go
package service

import (
	"errors"
	"fmt"
)

// Taksonomi error ledger. Controller memetakan ke error_code HTTP;
// tidak ada yang ditelan diam-diam.
var (
	ErrStructureNotFound   = errors.New("fee structure not found")
	ErrRecordNotFound      = errors.New("fee record not found")
	ErrInactiveStructure   = errors.New("fee structure is inactive")
	ErrConcurrencyConflict = errors.New("concurrent write on fee record, retry against fresh state")
)

// ValidationError: input cacat (nominal <= 0, mode pembayaran tak dikenal, dst).
// Tidak pernah di-retry otomatis.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// OverpaymentError: nominal melebihi pending saat ini; caller harus memecah pembayaran.
type OverpaymentError struct {
	AmountIDR  int64
	PendingIDR int64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %d exceeds pending amount %d", e.AmountIDR, e.PendingIDR)
}
