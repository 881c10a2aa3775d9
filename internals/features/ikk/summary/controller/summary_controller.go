package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	policyModel "ikk_backend/internals/features/ikk/policy/model"
	"ikk_backend/internals/features/ikk/summary/service"
	helper "ikk_backend/internals/helpers"
)

type SummaryController struct {
	DB      *gorm.DB
	Service *service.SummaryService
}

func NewSummaryController(db *gorm.DB, svc *service.SummaryService) *SummaryController {
	return &SummaryController{DB: db, Service: svc}
}

// Summarize
// POST /api/policies/:id/ringkasan
func (h *SummaryController) Summarize(c *fiber.Ctx) error {
	id, err := helper.BigIDParam(c, "id")
	if err != nil {
		return err
	}

	if !h.Service.Enabled() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan ringkasan tidak tersedia")
	}

	var policy policyModel.PolicyModel
	if err := h.DB.Where("policy_id = ?", id).First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kebijakan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan")
	}

	summary, err := h.Service.Summarize(c.Context(), &policy)
	if err != nil {
		if errors.Is(err, service.ErrSummaryUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan ringkasan tidak tersedia")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat ringkasan")
	}

	return helper.JsonOK(c, "Ringkasan berhasil dibuat", fiber.Map{
		"policy_id": policy.PolicyID,
		"ringkasan": summary,
	})
}
