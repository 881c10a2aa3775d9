package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "ikk_backend/internals/features/users/user/model"
)

// Migrasi harus jalan di sqlite: tidak boleh ada DDL khusus Postgres
// (mis. DEFAULT gen_random_uuid()) nyangkut di model yang ikut dimigrasi.
func TestNewTestDB_MigrasiJalanDiSqlite(t *testing.T) {
	tdb := NewTestDB(t)
	defer tdb.Close()

	for _, table := range []string{"policies", "ikk_ki_scores", "ikk_ku_scores", "users", "roles", "user_roles"} {
		assert.True(t, tdb.DB.Migrator().HasTable(table), "tabel %s harus ada", table)
	}
}

func TestFactory_UserDanRoleDapatUUIDDariHook(t *testing.T) {
	tdb := NewTestDB(t)
	defer tdb.Close()

	user := CreateUser(t, tdb.DB, "enumerator")
	assert.NotEqual(t, uuid.Nil, user.UserID)
	require.Len(t, user.Roles, 1)
	assert.NotEqual(t, uuid.Nil, user.Roles[0].RoleID)

	var stored userModel.UserModel
	require.NoError(t, tdb.DB.Preload("Roles").Where("user_id = ?", user.UserID).First(&stored).Error)
	assert.Equal(t, "enumerator", stored.RoleName())
}
