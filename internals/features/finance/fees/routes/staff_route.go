package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "schoolku_backend/internals/features/finance/fees/controller"
	feeService "schoolku_backend/internals/features/finance/fees/service"
)

/*
Staff routes (pencatatan pembayaran + baca/laporan).
Role staf dicek per-operasi di controller (EnsureStaffSchool).
*/
func FeesStaffRoutes(staff fiber.Router, db *gorm.DB, svc *feeService.FeeService) {
	structures := &feeController.FeeStructureHandler{DB: db, Service: svc}
	records := &feeController.FeeRecordHandler{Service: svc}
	reports := &feeController.ReportHandler{Service: svc}

	grp := staff.Group("")
	{
		// =========================
		// Fee Structures (readonly)
		// =========================
		grp.Get("/fee-structures", structures.ListFeeStructures)

		// =========================
		// Fee Records
		// =========================
		grp.Post("/fee-records/:id/collect", records.Collect)
		grp.Get("/fee-records/defaulters", reports.ListDefaulters)
		grp.Get("/fee-records/statistics", reports.Statistics)
		grp.Get("/fee-records/:id", records.GetByID)
		grp.Get("/classes/:class_id/fee-records", records.ListByClass)
		grp.Get("/students/:student_id/fee-records", records.ListForStudent)
	}
}
