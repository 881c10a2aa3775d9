package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "ikk_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler menghapus token blacklist dan refresh token
// kadaluarsa secara berkala agar tabel tidak membengkak.
func StartTokenCleanupScheduler(db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Println("[WARNING] Gagal bersihkan token blacklist:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] %d token blacklist kadaluarsa dihapus", res.RowsAffected)
			}

			res = db.Where("expired_at < ?", now).
				Delete(&authModel.RefreshToken{})
			if res.Error != nil {
				log.Println("[WARNING] Gagal bersihkan refresh token:", res.Error)
			}
		}
	}()
}
