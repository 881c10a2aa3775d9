package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ikk_backend/internals/features/ikk/policy/dto"
	model "ikk_backend/internals/features/ikk/policy/model"
	"ikk_backend/internals/features/ikk/policy/workflow"
	helper "ikk_backend/internals/helpers"
)

var validate = validator.New()

type PolicyController struct {
	DB *gorm.DB
}

func NewPolicyController(db *gorm.DB) *PolicyController {
	return &PolicyController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/policies/create
func (h *PolicyController) Create(c *fiber.Ctx) error {
	var req dto.CreatePolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// Identitas pembuat dari token; body created_by hanya fallback klien lama
	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if req.CreatedBy == nil || *req.CreatedBy == uuid.Nil {
			return err
		}
		createdBy = *req.CreatedBy
	}

	m := req.ToModel(createdBy)
	m.PolicyStatus = string(workflow.StatusBelumTerverifikasi)
	m.PolicyProcess = string(workflow.ProsesDiajukan)

	if m.PolicyAgencyID == nil {
		if agencyID := helper.GetAgencyIDFromToken(c); agencyID != uuid.Nil {
			m.PolicyAgencyID = &agencyID
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] Gagal membuat kebijakan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kebijakan")
	}

	return helper.JsonCreated(c, "Kebijakan berhasil diajukan", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/policies/:id
func (h *PolicyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.BigIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.PolicyModel
	if err := h.DB.Where("policy_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kebijakan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan")
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST PER TAHAP ======================== */
// GET /api/policies/:userId/diajukan|masuk|proses|selesai|disetujui
// Daftar kebijakan per tahap lifecycle, difilter dengan id aktor di path.
func (h *PolicyController) ListByStage(c *fiber.Ctx) error {
	actorID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}
	stage := c.Params("stage")

	q := h.DB.Model(&model.PolicyModel{})
	switch stage {
	case "diajukan":
		q = q.Where("policy_process = ? AND policy_created_by = ?", workflow.ProsesDiajukan, actorID)
	case "masuk":
		// inbox enumerator: sudah ditugaskan, belum dikirim ke KI
		q = q.Where("policy_enumerator_id = ? AND policy_status = ?", actorID, workflow.StatusBelumTerverifikasi)
	case "proses":
		q = q.Where("policy_process = ? AND (policy_created_by = ? OR policy_enumerator_id = ?)",
			workflow.ProsesProses, actorID, actorID)
	case "selesai":
		q = q.Where("policy_process = ? AND (policy_created_by = ? OR policy_assigned_by_admin_id = ?)",
			workflow.ProsesSelesai, actorID, actorID)
	case "disetujui":
		q = q.Where("policy_process = ? AND policy_created_by = ?", workflow.ProsesDisetujui, actorID)
	default:
		return helper.JsonError(c, fiber.StatusNotFound, "Tahap tidak dikenal: "+stage)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kebijakan")
	}

	var rows []model.PolicyModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kebijakan")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== DELETE ======================== */
// DELETE /api/policies/:id
func (h *PolicyController) Delete(c *fiber.Ctx) error {
	id, err := helper.BigIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Where("policy_id = ?", id).Delete(&model.PolicyModel{})
	if res.Error != nil {
		log.Println("[ERROR] Gagal hapus kebijakan:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kebijakan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kebijakan tidak ditemukan")
	}

	// Hapus skor yang menempel; cascade tidak dijamin di level DB
	if err := h.DB.Exec("DELETE FROM ikk_ki_scores WHERE ikk_ki_score_policy_id = ?", id).Error; err != nil {
		log.Println("[WARNING] Gagal hapus skor KI terkait:", err)
	}
	if err := h.DB.Exec("DELETE FROM ikk_ku_scores WHERE ikk_ku_score_policy_id = ?", id).Error; err != nil {
		log.Println("[WARNING] Gagal hapus skor KU terkait:", err)
	}

	return helper.JsonDeleted(c, "Kebijakan berhasil dihapus", fiber.Map{"id": id})
}
