package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	policyModel "ikk_backend/internals/features/ikk/policy/model"
	dto "ikk_backend/internals/features/ikk/score/dto"
	model "ikk_backend/internals/features/ikk/score/model"
	helper "ikk_backend/internals/helpers"
)

var validate = validator.New()

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

// parseSaveRequest membaca & memvalidasi payload upsert skor.
func (h *ScoreController) parseSaveRequest(c *fiber.Ctx) (*dto.SaveScoreRequest, error) {
	var req dto.SaveScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.PolicyID == 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "policy_id wajib diisi dan numerik")
	}
	if err := validate.Struct(req); err != nil {
		return nil, helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// Kebijakan harus ada sebelum skor bisa menempel
	var count int64
	if err := h.DB.Model(&policyModel.PolicyModel{}).
		Where("policy_id = ?", req.PolicyID).Count(&count).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kebijakan")
	}
	if count == 0 {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Kebijakan tidak ditemukan")
	}
	return &req, nil
}

/* ======================= UPSERT SKOR KI ======================= */
// POST /api/answers dan POST /api/koorinstansi/update-ikk-ki-score
// Upsert satu row per kebijakan; field yang tidak dikirim tidak disentuh.
func (h *ScoreController) SaveKIScore(c *fiber.Ctx) error {
	req, err := h.parseSaveRequest(c)
	if req == nil {
		return err
	}

	actorID, _ := helper.GetUserIDFromToken(c) // opsional: klien lama tanpa token

	var row model.KIScoreModel
	findErr := h.DB.Where("ikk_ki_score_policy_id = ?", req.PolicyID).First(&row).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		row = model.KIScoreModel{KIScorePolicyID: req.PolicyID}
		req.ApplyToKI(&row, actorID)
		if err := h.DB.Create(&row).Error; err != nil {
			log.Println("[ERROR] Gagal membuat skor KI:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor")
		}
		return helper.JsonCreated(c, "Skor KI tersimpan", row)
	case findErr != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil skor")
	}

	req.ApplyToKI(&row, actorID)
	if err := h.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update skor KI:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor")
	}
	return helper.JsonUpdated(c, "Skor KI diperbarui", row)
}

/* ======================= UPSERT SKOR KU ======================= */
// POST /api/save-ikk-ku-score
func (h *ScoreController) SaveKUScore(c *fiber.Ctx) error {
	req, err := h.parseSaveRequest(c)
	if req == nil {
		return err
	}

	actorID, _ := helper.GetUserIDFromToken(c)

	var row model.KUScoreModel
	findErr := h.DB.Where("ikk_ku_score_policy_id = ?", req.PolicyID).First(&row).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		row = model.KUScoreModel{KUScorePolicyID: req.PolicyID}
		req.ApplyToKU(&row, actorID)
		if err := h.DB.Create(&row).Error; err != nil {
			log.Println("[ERROR] Gagal membuat skor KU:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor")
		}
		return helper.JsonCreated(c, "Skor KU tersimpan", row)
	case findErr != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil skor")
	}

	req.ApplyToKU(&row, actorID)
	if err := h.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update skor KU:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor")
	}
	return helper.JsonUpdated(c, "Skor KU diperbarui", row)
}

/* ======================= GET SKOR PER KEBIJAKAN ======================= */
// GET /api/scores/:id — skor KI + KU sekaligus untuk satu kebijakan
func (h *ScoreController) GetByPolicyID(c *fiber.Ctx) error {
	id, err := helper.BigIDParam(c, "id")
	if err != nil {
		return err
	}

	var ki model.KIScoreModel
	var ku model.KUScoreModel
	var kiPtr, kuPtr any

	if err := h.DB.Where("ikk_ki_score_policy_id = ?", id).First(&ki).Error; err == nil {
		kiPtr = ki
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil skor KI")
	}
	if err := h.DB.Where("ikk_ku_score_policy_id = ?", id).First(&ku).Error; err == nil {
		kuPtr = ku
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil skor KU")
	}

	if kiPtr == nil && kuPtr == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada skor untuk kebijakan ini")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"ki_score": kiPtr,
		"ku_score": kuPtr,
	})
}
