package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ikk_backend/internals/features/ikk/policy/dto"
	model "ikk_backend/internals/features/ikk/policy/model"
	"ikk_backend/internals/features/ikk/policy/workflow"
	helper "ikk_backend/internals/helpers"
)

// PolicyWorkflowController menangani semua transisi state kebijakan.
// Setiap transisi = satu UPDATE atomik dengan precondition state asal di
// klausa WHERE (tabel transisi package workflow). RowsAffected == 0 lalu
// dibedakan jadi 404 (row tidak ada) atau 409 (state tidak mengizinkan).
type PolicyWorkflowController struct {
	DB *gorm.DB
}

func NewPolicyWorkflowController(db *gorm.DB) *PolicyWorkflowController {
	return &PolicyWorkflowController{DB: db}
}

// transition menjalankan satu event workflow terhadap satu kebijakan.
// extra berisi kolom penugasan/audit tambahan di luar status/process.
func (h *PolicyWorkflowController) transition(c *fiber.Ctx, id helper.BigID, ev workflow.Event, extra map[string]any) error {
	tr := workflow.Guard(ev)

	updates := map[string]any{"updated_at": time.Now()}
	if tr.ToStatus != nil {
		updates["policy_status"] = string(*tr.ToStatus)
	}
	if tr.ToProcess != nil {
		updates["policy_process"] = string(*tr.ToProcess)
	}
	for k, v := range extra {
		updates[k] = v
	}

	q := h.DB.Model(&model.PolicyModel{}).Where("policy_id = ?", id)
	if scope := tr.StatusScope(); len(scope) > 0 {
		q = q.Where("policy_status IN ?", scope)
	}
	if scope := tr.ProcessScope(); len(scope) > 0 {
		q = q.Where("policy_process IN ?", scope)
	}

	res := q.Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] transisi %s gagal untuk policy %s: %v", ev, id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status kebijakan")
	}
	if res.RowsAffected == 0 {
		// Dua kemungkinan: row tidak ada, atau state sekarang tidak mengizinkan event ini.
		var row model.PolicyModel
		if err := h.DB.Select("policy_id", "policy_status", "policy_process").
			Where("policy_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Kebijakan tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kebijakan")
		}
		return helper.JsonError(c, fiber.StatusConflict,
			"Kebijakan sedang di tahap "+row.PolicyStatus+"/"+row.PolicyProcess+", tidak bisa menerima aksi ini")
	}

	var row model.PolicyModel
	if err := h.DB.Where("policy_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan")
	}
	return helper.JsonUpdated(c, "Status kebijakan diperbarui", dto.FromModel(row))
}

/* ======================= PILIH ENUMERATOR ======================= */
// POST /api/policies/pilih-enumerator — Koordinator Instansi menugaskan enumerator
func (h *PolicyWorkflowController) AssignEnumerator(c *fiber.Ctx) error {
	var req dto.AssignEnumeratorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.PolicyID == 0 || req.AnalystID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "policyId dan analystId wajib diisi")
	}

	return h.transition(c, req.PolicyID, workflow.EventAssignEnumerator, map[string]any{
		"policy_enumerator_id":              req.AnalystID,
		"policy_processed_by_enumerator_id": req.AnalystID,
	})
}

/* ======================= KIRIM KE KI ======================= */
// POST /api/policies/send_to_ki — enumerator selesai mengisi, menunggu validasi KI
func (h *PolicyWorkflowController) SendToKI(c *fiber.Ctx) error {
	var req dto.PolicyIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	enumeratorID, err := helper.GetActorIDFromTokenOrHeader(c, "x-enumerator-id")
	if err != nil {
		return err
	}

	now := time.Now()
	return h.transition(c, req.ID, workflow.EventSendToKI, map[string]any{
		"policy_processed_by_enumerator_id": enumeratorID,
		"policy_sent_to_ki_at":              now,
	})
}

/* ======================= TERUSKAN KE KU ======================= */
// POST /api/policies/kirim-koordinator — KI meneruskan ke Koordinator Utama
func (h *PolicyWorkflowController) ForwardToKU(c *fiber.Ctx) error {
	var req dto.PolicyIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	koorID, err := helper.GetActorIDFromTokenOrHeader(c, "x-koorinstansi-id")
	if err != nil {
		return err
	}

	return h.transition(c, req.ID, workflow.EventForwardToKU, map[string]any{
		"policy_assigned_by_admin_id": koorID,
	})
}

/* ======================= VALIDASI AKHIR KU ======================= */
// POST /api/policies/send-to-ku — tanda tangan akhir Koordinator Utama
func (h *PolicyWorkflowController) ValidateKU(c *fiber.Ctx) error {
	var req struct {
		ID           helper.BigID `json:"id"`
		EnumeratorID *uuid.UUID   `json:"enumeratorId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}
	if req.EnumeratorID == nil || *req.EnumeratorID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "enumeratorId wajib diisi")
	}

	validatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		// kompatibilitas: klien lama mengirim id validator lewat body
		validatorID = *req.EnumeratorID
	}

	now := time.Now()
	return h.transition(c, req.ID, workflow.EventValidateKU, map[string]any{
		"policy_validated_by": validatorID,
		"policy_validated_at": now,
	})
}

/* ======================= BULK TANDAI VERIFIKASI ======================= */
// POST /api/policies/update-status — KU menandai batch kebijakan miliknya untuk
// diverifikasi. Hanya row dengan policy_created_by = userId yang tersentuh;
// id lain dalam daftar dibiarkan apa adanya.
func (h *PolicyWorkflowController) MarkVerification(c *fiber.Ctx) error {
	var req dto.BulkVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.PolicyIDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "policyIds wajib diisi")
	}

	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if req.UserID == nil || *req.UserID == uuid.Nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "userId wajib diisi")
		}
		ownerID = *req.UserID
	}

	tr := workflow.Guard(workflow.EventMarkVerification)
	res := h.DB.Model(&model.PolicyModel{}).
		Where("policy_id IN ?", req.PolicyIDs).
		Where("policy_created_by = ?", ownerID).
		Where("policy_status IN ?", tr.StatusScope()).
		Updates(map[string]any{
			"policy_status": string(*tr.ToStatus),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		log.Println("[ERROR] bulk mark verification:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status kebijakan")
	}

	return helper.JsonUpdated(c, "Kebijakan ditandai untuk verifikasi", fiber.Map{
		"requested": len(req.PolicyIDs),
		"updated":   res.RowsAffected,
	})
}

/* ======================= KEPUTUSAN VERIFIKATOR ======================= */
// POST /api/policies/approve
func (h *PolicyWorkflowController) Approve(c *fiber.Ctx) error {
	return h.verdict(c, workflow.EventApprove)
}

// POST /api/policies/reject
func (h *PolicyWorkflowController) Reject(c *fiber.Ctx) error {
	return h.verdict(c, workflow.EventReject)
}

func (h *PolicyWorkflowController) verdict(c *fiber.Ctx, ev workflow.Event) error {
	var req dto.PolicyIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	now := time.Now()
	return h.transition(c, req.ID, ev, map[string]any{
		"policy_verified_at": now,
	})
}
