package constants

import "fmt"

// Nama role sesuai tabel roles
const (
	RoleSuperadmin    = "superadmin"
	RoleAdminInstansi = "admin_instansi"
	RoleEnumerator    = "enumerator"
	RoleKoorInstansi  = "koor_instansi"
	RoleKoorNasional  = "koor_nasional"
	RoleVerifikator   = "verifikator"
)

// Template pesan error role
const (
	ErrOnlyAdminInstansiCanAccess = "❌ Hanya admin instansi yang boleh mengakses fitur %s."
	ErrOnlyEnumeratorCanAccess    = "❌ Hanya enumerator yang boleh mengakses fitur %s."
	ErrOnlyKoorInstansiCanAccess  = "❌ Hanya koordinator instansi yang boleh mengakses fitur %s."
	ErrOnlyKoorNasionalCanAccess  = "❌ Hanya koordinator nasional yang boleh mengakses fitur %s."
	ErrOnlyVerifikatorCanAccess   = "❌ Hanya verifikator yang boleh mengakses fitur %s."
)

func RoleErrorAdminInstansi(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminInstansiCanAccess, feature)
}

func RoleErrorEnumerator(feature string) string {
	return fmt.Sprintf(ErrOnlyEnumeratorCanAccess, feature)
}

func RoleErrorKoorInstansi(feature string) string {
	return fmt.Sprintf(ErrOnlyKoorInstansiCanAccess, feature)
}

func RoleErrorKoorNasional(feature string) string {
	return fmt.Sprintf(ErrOnlyKoorNasionalCanAccess, feature)
}

func RoleErrorVerifikator(feature string) string {
	return fmt.Sprintf(ErrOnlyVerifikatorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleAdminInstansi,
		RoleEnumerator,
		RoleKoorInstansi,
		RoleKoorNasional,
		RoleVerifikator,
	}

	// Role yang boleh melihat daftar kebijakan milik instansinya
	InstansiRoles = []string{
		RoleAdminInstansi,
		RoleEnumerator,
		RoleKoorInstansi,
	}

	// Superadmin selalu lolos gate per-role
	AdminInstansiOnly = []string{RoleAdminInstansi, RoleSuperadmin}
	EnumeratorOnly    = []string{RoleEnumerator, RoleSuperadmin}
	KoorInstansiOnly  = []string{RoleKoorInstansi, RoleSuperadmin}
	KoorNasionalOnly  = []string{RoleKoorNasional, RoleSuperadmin}
	VerifikatorOnly   = []string{RoleVerifikator, RoleSuperadmin}
	SuperadminOnly    = []string{RoleSuperadmin}
)
