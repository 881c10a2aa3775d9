package seeds

import (
	"log"

	"gorm.io/gorm"

	"ikk_backend/internals/constants"
	userModel "ikk_backend/internals/features/users/user/model"
)

// RunAllSeeds mengisi data master yang wajib ada sebelum aplikasi dipakai.
// Idempoten: boleh dipanggil berulang saat startup.
func RunAllSeeds(db *gorm.DB) {
	SeedRoles(db)
}

// SeedRoles memastikan enam role IKK ada di tabel roles.
func SeedRoles(db *gorm.DB) {
	for _, name := range constants.AllRoles {
		role := userModel.RoleModel{RoleName: name}
		if err := db.Where("role_name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Printf("[WARNING] Gagal seed role %s: %v", name, err)
		}
	}
}
