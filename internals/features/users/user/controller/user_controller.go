package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "ikk_backend/internals/features/users/user/model"
	helper "ikk_backend/internals/helpers"
	"ikk_backend/internals/helpers/mailer"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ======================== LIST ======================== */
// GET /api/users?status=pending|aktif|non_aktif&q=
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.UserModel{}).Preload("Roles")
	switch c.Query("status") {
	case "pending", "non_aktif":
		q = q.Where("is_active = ?", false)
	case "aktif":
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var rows []model.UserModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET ME ======================== */
// GET /api/users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.UserModel
	if err := h.DB.Preload("Roles").Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "OK", row)
}

/* ======================== APPROVAL ======================== */
// PATCH /api/users/:id/status — admin mengaktifkan/menonaktifkan akun.
// Side effect: email notifikasi (fire-and-forget, kegagalan email tidak
// membatalkan perubahan status).
func (h *UserController) SetActiveStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var req struct {
		Status string `json:"status"` // aktif | non_aktif
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var active bool
	switch req.Status {
	case "aktif":
		active = true
	case "non_aktif":
		active = false
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "status harus 'aktif' atau 'non_aktif'")
	}

	var row model.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if err := h.DB.Model(&row).Update("is_active", active).Error; err != nil {
		log.Println("[ERROR] Gagal update status user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status user")
	}

	if active {
		mailer.SendMailAsync(row.Email, "Akun IKK Anda telah diaktifkan",
			"Halo "+row.UserName+",\n\nAkun Anda pada aplikasi Indeks Kualitas Kebijakan sudah aktif dan dapat digunakan untuk login.")
	} else {
		mailer.SendMailAsync(row.Email, "Akun IKK Anda dinonaktifkan",
			"Halo "+row.UserName+",\n\nAkun Anda pada aplikasi Indeks Kualitas Kebijakan telah dinonaktifkan. Hubungi admin instansi Anda untuk informasi lebih lanjut.")
	}

	return helper.JsonUpdated(c, "Status user diperbarui", fiber.Map{
		"user_id":   row.UserID,
		"is_active": active,
	})
}
