// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoutes "schoolku_backend/internals/features/finance/fees/routes"
	feeService "schoolku_backend/internals/features/finance/fees/service"
	schoolMiddleware "schoolku_backend/internals/middlewares/auth_school"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, svc *feeService.FeeService) {
	// ===================== GROUPS =====================

	// ADMIN → struktur fee, inisialisasi, job denda
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	feeRoutes.FeesAdminRoutes(admin, db, svc)

	// STAFF → pencatatan pembayaran + laporan
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/u",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	feeRoutes.FeesStaffRoutes(staff, db, svc)
}
