package constants

import "fmt"

// Role dasar aplikasi
const (
	RoleUser       = "user"
	RoleStudent    = "student"
	RoleTeacher    = "teacher"
	RoleAccountant = "accountant"
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyNonUserCanAccess = "❌ Hanya staf sekolah yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorNonUser(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	StaffRoles = []string{
		RoleTeacher,
		RoleAccountant,
		RoleAdmin,
		RoleOwner,
	}
)
