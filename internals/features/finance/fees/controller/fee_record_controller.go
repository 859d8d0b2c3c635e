// file: internals/features/finance/fees/controller/fee_record_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	dto "schoolku_backend/internals/features/finance/fees/dto"
	model "schoolku_backend/internals/features/finance/fees/model"
	service "schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =======================================================
   FEE RECORDS (STAFF, TENANT-SCOPED)
======================================================= */

type FeeRecordHandler struct {
	Service *service.FeeService
}

// POST /fee-records/:id/collect
func (h *FeeRecordHandler) Collect(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.CollectPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	rec, err := h.Service.Collect(c.UserContext(), schoolID, id, service.CollectInput{
		AmountIDR:   in.AmountIDR,
		Mode:        model.PaymentMode(in.PaymentMode),
		ReferenceID: in.ReferenceID,
	})
	if err != nil {
		return jsonServiceError(c, err)
	}

	resp, err := dto.ToFeeRecordResponse(*rec)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment recorded", resp)
}

// GET /fee-records/:id
func (h *FeeRecordHandler) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	rec, err := h.Service.GetRecord(c.UserContext(), schoolID, id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	resp, err := dto.ToFeeRecordResponse(*rec)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /students/:student_id/fee-records
func (h *FeeRecordHandler) ListForStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	studentID, err := parseUUID(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	}

	recs, err := h.Service.GetRecordsForStudent(c.UserContext(), schoolID, studentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	out, err := dto.ToFeeRecordResponses(recs)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /classes/:class_id/fee-records?status=&academic_year=
func (h *FeeRecordHandler) ListByClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	classID, err := parseUUID(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	}

	var q dto.ListFeeRecordQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	if err := helper.ValidateStruct(c, q); err != nil {
		return err
	}

	filter := service.RecordListFilter{AcademicYear: q.AcademicYear}
	if q.Status != nil {
		st := model.FeeRecordStatus(*q.Status)
		filter.Status = &st
	}

	recs, err := h.Service.ListByClass(c.UserContext(), schoolID, classID, filter)
	if err != nil {
		return jsonServiceError(c, err)
	}
	out, err := dto.ToFeeRecordResponses(recs)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", out)
}
