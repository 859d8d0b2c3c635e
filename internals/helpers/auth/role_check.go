// file: internals/helpers/auth/role_check.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* ===============================
   Locals keys (diisi oleh middleware AuthJWT)
=================================*/

const (
	LocUserID   = "user_id"
	LocSchoolID = "school_id"
	LocRole     = "role"
)

// GetUserIDFromToken: ambil user_id (UUID) dari locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// GetSchoolIDFromToken: tenant aktif dari token.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocSchoolID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School context missing in token")
	}
	return id, nil
}

func roleFromLocals(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRole).(string)
	return strings.ToLower(strings.TrimSpace(s))
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// EnsureAdminSchool: hanya admin/owner tenant yang cocok.
// Dipakai untuk operasi berisiko (buat struktur fee, inisialisasi, terapkan denda).
func EnsureAdminSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	tokenSchoolID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if tokenSchoolID != schoolID {
		return fiber.NewError(fiber.StatusForbidden, "School tidak sesuai dengan token")
	}
	if !hasRole(roleFromLocals(c), constants.AdminAndAbove) {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("fee ledger"))
	}
	return nil
}

// EnsureStaffSchool: admin/owner/teacher/accountant tenant yang cocok.
// Dipakai untuk pencatatan pembayaran & laporan.
func EnsureStaffSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	tokenSchoolID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if tokenSchoolID != schoolID {
		return fiber.NewError(fiber.StatusForbidden, "School tidak sesuai dengan token")
	}
	if !hasRole(roleFromLocals(c), constants.StaffRoles) {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorNonUser("fee ledger"))
	}
	return nil
}
