// file: internals/features/finance/fees/controller/report_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "schoolku_backend/internals/features/finance/fees/dto"
	service "schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =======================================================
   REPORTING (STAFF) + JOB TRIGGER (ADMIN)
======================================================= */

type ReportHandler struct {
	Service *service.FeeService
}

// GET /fee-records/defaulters?class_id=
func (h *ReportHandler) ListDefaulters(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	var classID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
		}
		classID = &id
	}

	recs, err := h.Service.ListDefaulters(c.UserContext(), schoolID, classID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	out, err := dto.ToFeeRecordResponses(recs)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /fee-records/statistics?class_id=&academic_year=
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	scope := service.StatisticsScope{}
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
		}
		scope.ClassID = &id
	}
	if raw := strings.TrimSpace(c.Query("academic_year")); raw != "" {
		scope.AcademicYear = &raw
	}

	stats, err := h.Service.Statistics(c.UserContext(), schoolID, scope)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

// POST /late-fines/apply — trigger manual job denda (admin).
// Scope dibatasi sekolah si admin; run global hanya lewat scheduler.
// Run kedua saat masih berjalan = no-op (already_running).
func (h *ReportHandler) ApplyLateFines(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminSchool(c, schoolID); err != nil {
		return err
	}

	summary, err := h.Service.ApplyLateFines(c.UserContext(), &schoolID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "late fine run finished", summary)
}
