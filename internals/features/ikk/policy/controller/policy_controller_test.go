package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "ikk_backend/internals/features/ikk/policy/model"
	"ikk_backend/internals/features/ikk/policy/workflow"
	"ikk_backend/internals/testutil"
)

// newTestApp memasang handler kebijakan dengan identitas login palsu di Locals,
// seperti yang diisi auth middleware di produksi.
func newTestApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	})

	policyController := NewPolicyController(db)
	workflowController := NewPolicyWorkflowController(db)

	app.Post("/api/policies/create", policyController.Create)
	app.Get("/api/policies/:id", policyController.GetByID)
	app.Get("/api/policies/:userId/:stage", policyController.ListByStage)
	app.Delete("/api/policies/:id", policyController.Delete)

	app.Post("/api/policies/pilih-enumerator", workflowController.AssignEnumerator)
	app.Post("/api/policies/send_to_ki", workflowController.SendToKI)
	app.Post("/api/policies/kirim-koordinator", workflowController.ForwardToKU)
	app.Post("/api/policies/send-to-ku", workflowController.ValidateKU)
	app.Post("/api/policies/update-status", workflowController.MarkVerification)
	app.Post("/api/policies/approve", workflowController.Approve)
	app.Post("/api/policies/reject", workflowController.Reject)

	return app
}

func TestCreatePolicy_StateAwalDefault(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	creator := uuid.New()
	app := newTestApp(tdb.DB, creator)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/create", fiber.Map{
		"nama_kebijakan":   "Peraturan Uji Coba",
		"sektor_kebijakan": "kesehatan",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var row model.PolicyModel
	require.NoError(t, tdb.DB.First(&row).Error)
	assert.Equal(t, string(workflow.StatusBelumTerverifikasi), row.PolicyStatus)
	assert.Equal(t, string(workflow.ProsesDiajukan), row.PolicyProcess)
	assert.Equal(t, creator, row.PolicyCreatedBy)
}

func TestAssignEnumerator_MengisiDuaKolomPenugasan(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newTestApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB)
	analyst := uuid.New()

	req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/pilih-enumerator", fiber.Map{
		"policyId":  policy.PolicyID,
		"analystId": analyst,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var row model.PolicyModel
	require.NoError(t, tdb.DB.Where("policy_id = ?", policy.PolicyID).First(&row).Error)
	require.NotNil(t, row.PolicyEnumeratorID)
	require.NotNil(t, row.PolicyProcessedByEnumeratorID)
	assert.Equal(t, analyst, *row.PolicyEnumeratorID)
	assert.Equal(t, analyst, *row.PolicyProcessedByEnumeratorID)
	assert.Equal(t, string(workflow.ProsesProses), row.PolicyProcess)
}

func TestTransisi_IDTidakAda_404TanpaTulis(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newTestApp(tdb.DB, uuid.New())
	existing := testutil.CreatePolicy(t, tdb.DB)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/pilih-enumerator", fiber.Map{
		"policyId":  999999,
		"analystId": uuid.New(),
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Row yang ada tidak boleh tersentuh
	var row model.PolicyModel
	require.NoError(t, tdb.DB.Where("policy_id = ?", existing.PolicyID).First(&row).Error)
	assert.Nil(t, row.PolicyEnumeratorID)
	assert.Equal(t, string(workflow.ProsesDiajukan), row.PolicyProcess)
}

func TestTransisi_StateTidakMengizinkan_409(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	enumerator := uuid.New()
	app := newTestApp(tdb.DB, enumerator)

	// send_to_ki hanya boleh dari BELUM_TERVERIFIKASI / MENUNGGU_VALIDASI_KI
	policy := testutil.CreatePolicy(t, tdb.DB,
		testutil.WithStatus(string(workflow.StatusSedangVerifikasi)),
	)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/send_to_ki", fiber.Map{
		"id": policy.PolicyID,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestApprove_DuaKaliTetapBerhasil(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newTestApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB,
		testutil.WithStatus(string(workflow.StatusSedangVerifikasi)),
	)

	for i := 0; i < 2; i++ {
		req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/approve", fiber.Map{
			"id": policy.PolicyID,
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "percobaan ke-%d", i+1)
	}

	var row model.PolicyModel
	require.NoError(t, tdb.DB.Where("policy_id = ?", policy.PolicyID).First(&row).Error)
	assert.Equal(t, string(workflow.StatusSelesaiVerifikasi), row.PolicyStatus)
	assert.Equal(t, string(workflow.ProsesDisetujui), row.PolicyProcess)
	assert.NotNil(t, row.PolicyVerifiedAt)
}

func TestMarkVerification_HanyaMilikPemohon(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	owner := uuid.New()
	other := uuid.New()
	app := newTestApp(tdb.DB, owner)

	mine := testutil.CreatePolicy(t, tdb.DB,
		testutil.WithStatus(string(workflow.StatusMenungguValidasiKU)),
		testutil.WithCreatedBy(owner),
	)
	theirs := testutil.CreatePolicy(t, tdb.DB,
		testutil.WithStatus(string(workflow.StatusMenungguValidasiKU)),
		testutil.WithCreatedBy(other),
	)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/policies/update-status", fiber.Map{
		"policyIds": []int64{int64(mine.PolicyID), int64(theirs.PolicyID)},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := testutil.DecodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 2, data["requested"])
	assert.EqualValues(t, 1, data["updated"])

	var rowMine, rowTheirs model.PolicyModel
	require.NoError(t, tdb.DB.Where("policy_id = ?", mine.PolicyID).First(&rowMine).Error)
	require.NoError(t, tdb.DB.Where("policy_id = ?", theirs.PolicyID).First(&rowTheirs).Error)
	assert.Equal(t, string(workflow.StatusSedangVerifikasi), rowMine.PolicyStatus)
	assert.Equal(t, string(workflow.StatusMenungguValidasiKU), rowTheirs.PolicyStatus)
}

func TestListByStage_DiajukanHanyaMilikAktor(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	actor := uuid.New()
	app := newTestApp(tdb.DB, actor)

	testutil.CreatePolicy(t, tdb.DB, testutil.WithCreatedBy(actor))
	testutil.CreatePolicy(t, tdb.DB) // milik user lain

	req := testutil.JSONRequest(t, http.MethodGet, "/api/policies/"+actor.String()+"/diajukan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := testutil.DecodeBody(t, resp)
	items := body["data"].([]any)
	assert.Len(t, items, 1)
}

func TestDeletePolicy_404KalauTidakAda(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newTestApp(tdb.DB, uuid.New())

	req := testutil.JSONRequest(t, http.MethodDelete, "/api/policies/424242", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeletePolicy_SoftDelete(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newTestApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB)

	req := testutil.JSONRequest(t, http.MethodDelete, "/api/policies/"+policy.PolicyID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	tdb.DB.Model(&model.PolicyModel{}).Where("policy_id = ?", policy.PolicyID).Count(&count)
	assert.EqualValues(t, 0, count)

	// row masih ada secara fisik (soft delete)
	var raw int64
	tdb.DB.Unscoped().Model(&model.PolicyModel{}).Where("policy_id = ?", policy.PolicyID).Count(&raw)
	assert.EqualValues(t, 1, raw)
}
