package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "schoolku_backend/internals/features/finance/fees/controller"
	feeService "schoolku_backend/internals/features/finance/fees/service"
)

/*
Admin routes (CRUD struktur fee + aksi berisiko).
Role admin dicek per-operasi di controller (EnsureAdminSchool).
*/
func FeesAdminRoutes(admin fiber.Router, db *gorm.DB, svc *feeService.FeeService) {
	structures := &feeController.FeeStructureHandler{DB: db, Service: svc}
	reports := &feeController.ReportHandler{Service: svc}

	grp := admin.Group("")
	{
		// =========================
		// Fee Structures
		// =========================
		grp.Post("/fee-structures", structures.CreateFeeStructure)
		grp.Patch("/fee-structures/:id", structures.UpdateFeeStructure)
		grp.Post("/fee-structures/:id/activate", structures.SetActive(true))
		grp.Post("/fee-structures/:id/deactivate", structures.SetActive(false))

		// =========================
		// Initialize (expand → fee records per siswa)
		// =========================
		grp.Post("/fee-structures/:id/initialize", structures.Initialize)

		// =========================
		// Late fine job (trigger manual)
		// =========================
		grp.Post("/late-fines/apply", reports.ApplyLateFines)
	}
}
