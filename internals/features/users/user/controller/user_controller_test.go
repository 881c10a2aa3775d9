package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "ikk_backend/internals/features/users/user/model"
	"ikk_backend/internals/testutil"
)

func newUserApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	userController := NewUserController(db)
	app.Patch("/api/users/:id/status", userController.SetActiveStatus)
	return app
}

func TestSetActiveStatus_IDBukanUUID_400(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newUserApp(tdb.DB)

	req := testutil.JSONRequest(t, http.MethodPatch, "/api/users/bukan-uuid/status", fiber.Map{
		"status": "aktif",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSetActiveStatus_AktifkanAkun(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newUserApp(tdb.DB)
	user := testutil.CreateUser(t, tdb.DB, "enumerator")
	require.NoError(t, tdb.DB.Model(&model.UserModel{}).
		Where("user_id = ?", user.UserID).Update("is_active", false).Error)

	req := testutil.JSONRequest(t, http.MethodPatch, "/api/users/"+user.UserID.String()+"/status", fiber.Map{
		"status": "aktif",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var row model.UserModel
	require.NoError(t, tdb.DB.Where("user_id = ?", user.UserID).First(&row).Error)
	assert.True(t, row.IsActive)
}

func TestSetActiveStatus_UserTidakAda_404(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	app := newUserApp(tdb.DB)

	req := testutil.JSONRequest(t, http.MethodPatch, "/api/users/"+uuid.NewString()+"/status", fiber.Map{
		"status": "non_aktif",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
