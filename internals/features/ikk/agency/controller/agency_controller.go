package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ikk_backend/internals/features/ikk/agency/dto"
	model "ikk_backend/internals/features/ikk/agency/model"
	helper "ikk_backend/internals/helpers"
)

var validate = validator.New()

type AgencyController struct {
	DB *gorm.DB
}

func NewAgencyController(db *gorm.DB) *AgencyController {
	return &AgencyController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/agencies
func (h *AgencyController) Create(c *fiber.Ctx) error {
	var req dto.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode PANRB instansi sudah terdaftar")
		}
		log.Println("[ERROR] Gagal membuat instansi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat instansi")
	}

	return helper.JsonCreated(c, "Instansi berhasil dibuat", m)
}

/* ======================== LIST ======================== */
// GET /api/agencies?q=&page=&per_page=
func (h *AgencyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.AgencyModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("agency_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung instansi")
	}

	var rows []model.AgencyModel
	if err := q.Order("agency_name ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar instansi")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/agencies/:id
func (h *AgencyController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var row model.AgencyModel
	if err := h.DB.Where("agency_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instansi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil instansi")
	}

	return helper.JsonOK(c, "OK", row)
}

/* ======================== UPDATE ======================== */
// PUT /api/agencies/:id
func (h *AgencyController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var row model.AgencyModel
	if err := h.DB.Where("agency_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instansi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil instansi")
	}

	var req dto.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update instansi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui instansi")
	}

	return helper.JsonUpdated(c, "Instansi diperbarui", row)
}

/* ======================== DELETE ======================== */
// DELETE /api/agencies/:id
func (h *AgencyController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := h.DB.Where("agency_id = ?", id).Delete(&model.AgencyModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus instansi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Instansi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Instansi dihapus", fiber.Map{"id": id})
}
