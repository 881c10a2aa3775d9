// file: internals/features/ikk/policy/route/policy_route.go
package route

import (
	"ikk_backend/internals/constants"
	controller "ikk_backend/internals/features/ikk/policy/controller"
	authMiddleware "ikk_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PolicyRoutes(app *fiber.App, db *gorm.DB) {
	policyController := controller.NewPolicyController(db)
	workflowController := controller.NewPolicyWorkflowController(db)

	policies := app.Group("/api/policies", authMiddleware.AuthMiddleware(db))

	// ===================== GATE PER ROLE =====================
	adminInstansi := authMiddleware.OnlyRoles(
		constants.RoleErrorAdminInstansi("kebijakan"),
		constants.AdminInstansiOnly...,
	)
	enumerator := authMiddleware.OnlyRoles(
		constants.RoleErrorEnumerator("kirim ke koordinator instansi"),
		constants.EnumeratorOnly...,
	)
	koorInstansi := authMiddleware.OnlyRoles(
		constants.RoleErrorKoorInstansi("kirim ke koordinator utama"),
		constants.KoorInstansiOnly...,
	)
	koorNasional := authMiddleware.OnlyRoles(
		constants.RoleErrorKoorNasional("validasi koordinator utama"),
		constants.KoorNasionalOnly...,
	)
	verifikator := authMiddleware.OnlyRoles(
		constants.RoleErrorVerifikator("verifikasi kebijakan"),
		constants.VerifikatorOnly...,
	)
	// Daftar per tahap hanya untuk role di level instansi
	instansi := authMiddleware.OnlyRoles(
		"❌ Daftar kebijakan per tahap hanya untuk role instansi.",
		append(constants.InstansiRoles, constants.RoleSuperadmin)...,
	)

	// ===================== CRUD =====================
	policies.Post("/create", adminInstansi, policyController.Create)
	policies.Get("/:id", policyController.GetByID)
	policies.Get("/:userId/:stage", instansi, policyController.ListByStage)
	policies.Delete("/:id", adminInstansi, policyController.Delete)

	// ===================== TRANSISI WORKFLOW =====================
	policies.Post("/pilih-enumerator", adminInstansi, workflowController.AssignEnumerator)
	policies.Post("/send_to_ki", enumerator, workflowController.SendToKI)
	policies.Post("/kirim-koordinator", koorInstansi, workflowController.ForwardToKU)
	policies.Post("/send-to-ku", koorNasional, workflowController.ValidateKU)
	policies.Post("/update-status", koorNasional, workflowController.MarkVerification)
	policies.Post("/approve", verifikator, workflowController.Approve)
	policies.Post("/reject", verifikator, workflowController.Reject)
}
