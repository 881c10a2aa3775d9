package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ikk_backend/internals/configs"
	authModel "ikk_backend/internals/features/users/auth/model"
	userModel "ikk_backend/internals/features/users/user/model"
	"ikk_backend/internals/testutil"

	"github.com/google/uuid"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldJWT, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "rahasia-uji"
	configs.JWTRefreshSecret = "rahasia-refresh-uji"
	t.Cleanup(func() {
		configs.JWTSecret = oldJWT
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestHashDanCheckPassword(t *testing.T) {
	hashed, err := HashPassword("kata-sandi-kuat")
	require.NoError(t, err)
	assert.NotEqual(t, "kata-sandi-kuat", hashed)

	assert.NoError(t, CheckPassword(hashed, "kata-sandi-kuat"))
	assert.Error(t, CheckPassword(hashed, "salah"))
}

func TestIssueAccessToken_KlaimLengkap(t *testing.T) {
	setTestSecrets(t)

	agencyID := uuid.New()
	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Budi",
		AgencyID: &agencyID,
		Roles:    []userModel.RoleModel{{RoleName: "enumerator"}},
	}

	tokenString, err := IssueAccessToken(user)
	require.NoError(t, err)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "Budi", claims["user_name"])
	assert.Equal(t, "enumerator", claims["role"])
	assert.Equal(t, agencyID.String(), claims["agency_id"])
}

func TestRotateRefreshToken_SekaliPakai(t *testing.T) {
	setTestSecrets(t)

	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	ownerID := uuid.New()
	raw, err := IssueRefreshToken(tdb.DB, ownerID)
	require.NoError(t, err)

	// Hash tersimpan, bukan token mentah
	var row authModel.RefreshToken
	require.NoError(t, tdb.DB.First(&row).Error)
	assert.NotEqual(t, raw, row.Token)

	gotID, err := RotateRefreshToken(tdb.DB, raw)
	require.NoError(t, err)
	assert.Equal(t, ownerID, gotID)

	// Token yang sudah dirotasi tidak boleh dipakai ulang
	_, err = RotateRefreshToken(tdb.DB, raw)
	assert.Error(t, err)
}

func TestRotateRefreshToken_TolakTokenAsing(t *testing.T) {
	setTestSecrets(t)

	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	_, err := RotateRefreshToken(tdb.DB, "bukan.jwt.valid")
	assert.Error(t, err)
}

func TestBlacklistToken(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	require.NoError(t, BlacklistToken(tdb.DB, "token-keluar", time.Now().Add(time.Hour)))

	var count int64
	tdb.DB.Model(&authModel.TokenBlacklist{}).Where("token = ?", "token-keluar").Count(&count)
	assert.EqualValues(t, 1, count)
}
