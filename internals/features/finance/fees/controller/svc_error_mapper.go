// file: internals/features/finance/fees/controller/svc_error_mapper.go
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	service "schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

// jsonServiceError memetakan taksonomi error service ke envelope HTTP
// dengan error_code machine-readable. Error tak dikenal → 500 apa adanya.
func jsonServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, map[string][]string{ve.Field: {ve.Reason}})
	}

	var oe *service.OverpaymentError
	if errors.As(err, &oe) {
		return helper.JsonErrorCode(c, http.StatusConflict, "OVERPAYMENT",
			fmt.Sprintf("nominal %d melebihi pending %d; pecah pembayaran", oe.AmountIDR, oe.PendingIDR))
	}

	switch {
	case errors.Is(err, service.ErrStructureNotFound):
		return helper.JsonError(c, http.StatusNotFound, "fee structure tidak ditemukan")
	case errors.Is(err, service.ErrRecordNotFound):
		return helper.JsonError(c, http.StatusNotFound, "fee record tidak ditemukan")
	case errors.Is(err, service.ErrInactiveStructure):
		return helper.JsonErrorCode(c, http.StatusConflict, "INACTIVE_STRUCTURE",
			"fee structure nonaktif, tidak bisa diinisialisasi")
	case errors.Is(err, service.ErrConcurrencyConflict):
		return helper.JsonErrorCode(c, http.StatusConflict, "CONFLICT",
			"tulisan bentrok dengan request lain, silakan ulangi")
	}

	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}
