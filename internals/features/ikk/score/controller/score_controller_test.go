package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "ikk_backend/internals/features/ikk/score/model"
	"ikk_backend/internals/testutil"
)

func newScoreApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	})

	scoreController := NewScoreController(db)
	app.Post("/api/answers", scoreController.SaveKIScore)
	app.Post("/api/koorinstansi/update-ikk-ki-score", scoreController.SaveKIScore)
	app.Post("/api/save-ikk-ku-score", scoreController.SaveKUScore)
	app.Get("/api/scores/:id", scoreController.GetByPolicyID)

	return app
}

func TestSaveKIScore_PartialUpsertTidakMenimpa(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	enumerator := uuid.New()
	app := newScoreApp(tdb.DB, enumerator)
	policy := testutil.CreatePolicy(t, tdb.DB)

	// Kirim a1 saja
	req := testutil.JSONRequest(t, http.MethodPost, "/api/answers", fiber.Map{
		"policy_id": policy.PolicyID,
		"a1":        2,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Susulan b1 saja — a1 lama harus tetap ada
	req = testutil.JSONRequest(t, http.MethodPost, "/api/answers", fiber.Map{
		"policy_id": policy.PolicyID,
		"b1":        3,
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var row model.KIScoreModel
	require.NoError(t, tdb.DB.Where("ikk_ki_score_policy_id = ?", policy.PolicyID).First(&row).Error)
	require.NotNil(t, row.KIScoreA1)
	require.NotNil(t, row.KIScoreB1)
	assert.EqualValues(t, 2, *row.KIScoreA1)
	assert.EqualValues(t, 3, *row.KIScoreB1)
	assert.EqualValues(t, 2, row.KIScoreATotal)
	assert.EqualValues(t, 3, row.KIScoreBTotal)
	assert.EqualValues(t, 5, row.KIScoreIKKTotal)
	require.NotNil(t, row.KIScoreFilledBy)
	assert.Equal(t, enumerator, *row.KIScoreFilledBy)

	// Hanya satu row per kebijakan
	var count int64
	tdb.DB.Model(&model.KIScoreModel{}).Where("ikk_ki_score_policy_id = ?", policy.PolicyID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSaveScore_KebijakanTidakAda_404TanpaTulis(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newScoreApp(tdb.DB, uuid.New())

	req := testutil.JSONRequest(t, http.MethodPost, "/api/save-ikk-ku-score", fiber.Map{
		"policy_id": 777777,
		"a1":        4,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	tdb.DB.Model(&model.KUScoreModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSaveScore_NilaiDiLuarRentang_422(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newScoreApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/answers", fiber.Map{
		"policy_id": policy.PolicyID,
		"a1":        9,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetByPolicyID_GabunganKIdanKU(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newScoreApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/answers", fiber.Map{
		"policy_id": policy.PolicyID,
		"a1":        1,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = testutil.JSONRequest(t, http.MethodGet, "/api/scores/"+policy.PolicyID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := testutil.DecodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.NotNil(t, data["ki_score"])
	assert.Nil(t, data["ku_score"])
}

func TestGetByPolicyID_BelumAdaSkor_404(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newScoreApp(tdb.DB, uuid.New())
	policy := testutil.CreatePolicy(t, tdb.DB)

	req := testutil.JSONRequest(t, http.MethodGet, "/api/scores/"+policy.PolicyID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
