// file: internals/features/finance/fees/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/fees/dto"
	model "schoolku_backend/internals/features/finance/fees/model"
	service "schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =======================================================
   FEE STRUCTURES (ADMIN, TENANT-SCOPED)
======================================================= */

type FeeStructureHandler struct {
	DB      *gorm.DB
	Service *service.FeeService
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// POST /fee-structures
func (h *FeeStructureHandler) CreateFeeStructure(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminSchool(c, schoolID); err != nil {
		return err
	}

	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := dto.FeeStructureCreateDTOToModel(in, schoolID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

// GET /fee-structures?class_id=&is_active=&academic_year=&page=&per_page=
func (h *FeeStructureHandler) ListFeeStructures(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	var q dto.ListFeeStructureQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	db := h.DB.Model(&model.FeeStructure{}).
		Where("fee_structure_school_id = ?", schoolID)
	if q.ClassID != nil {
		db = db.Where("fee_structure_class_id = ?", *q.ClassID)
	}
	if q.IsActive != nil {
		db = db.Where("fee_structure_is_active = ?", *q.IsActive)
	}
	if q.AcademicYear != nil && *q.AcademicYear != "" {
		db = db.Where("fee_structure_academic_year = ?", *q.AcademicYear)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeStructure
	if err := db.Order("fee_structure_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.FeeStructureResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToFeeStructureResponse(rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /fee-structures/:id
func (h *FeeStructureHandler) UpdateFeeStructure(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.FeeStructureUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.FeeStructure
	if err := h.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "fee structure tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyFeeStructureUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(m))
}

// POST /fee-structures/:id/activate | /deactivate
// Deaktivasi hanya menutup inisialisasi baru; record lama tidak tersentuh.
func (h *FeeStructureHandler) SetActive(active bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil {
			return err
		}
		if err := helperAuth.EnsureAdminSchool(c, schoolID); err != nil {
			return err
		}

		id, err := parseUUID(c, "id")
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid id")
		}

		res := h.DB.Model(&model.FeeStructure{}).
			Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
			Update("fee_structure_is_active", active)
		if res.Error != nil {
			return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, http.StatusNotFound, "fee structure tidak ditemukan")
		}

		msg := "fee structure activated"
		if !active {
			msg = "fee structure deactivated"
		}
		return helper.JsonUpdated(c, msg, fiber.Map{"fee_structure_is_active": active})
	}
}

// POST /fee-structures/:id/initialize
// Expand structure → satu fee record per siswa kelas; aman di-retry
// (double click tidak pernah bikin tagihan dobel).
func (h *FeeStructureHandler) Initialize(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res, err := h.Service.Initialize(c.UserContext(), schoolID, id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "fee records initialized", res)
}
