package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	policyModel "ikk_backend/internals/features/ikk/policy/model"
	scoreModel "ikk_backend/internals/features/ikk/score/model"
	authModel "ikk_backend/internals/features/users/auth/model"
	userModel "ikk_backend/internals/features/users/user/model"
)

// TestDB membungkus koneksi sqlite in-memory untuk handler test.
type TestDB struct {
	DB *gorm.DB
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal membuka database test: %v", err)
	}

	// AgencyModel tidak ikut: kolom text[] (pq.StringArray) khusus Postgres
	err = db.AutoMigrate(
		&policyModel.PolicyModel{},
		&scoreModel.KIScoreModel{},
		&scoreModel.KUScoreModel{},
		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.UserRoleModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
	)
	if err != nil {
		t.Fatalf("gagal migrasi database test: %v", err)
	}

	return &TestDB{DB: db}
}

func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// ===================== DATA FACTORY =====================

type PolicyOption func(*policyModel.PolicyModel)

func WithStatus(status string) PolicyOption {
	return func(p *policyModel.PolicyModel) { p.PolicyStatus = status }
}

func WithProcess(process string) PolicyOption {
	return func(p *policyModel.PolicyModel) { p.PolicyProcess = process }
}

func WithCreatedBy(id uuid.UUID) PolicyOption {
	return func(p *policyModel.PolicyModel) { p.PolicyCreatedBy = id }
}

// CreatePolicy menyimpan kebijakan dengan default status awal.
func CreatePolicy(t *testing.T, db *gorm.DB, opts ...PolicyOption) *policyModel.PolicyModel {
	t.Helper()

	policy := &policyModel.PolicyModel{
		PolicyName:      fmt.Sprintf("Kebijakan Uji %s", uuid.NewString()[:8]),
		PolicySector:    "pendidikan",
		PolicyCreatedBy: uuid.New(),
		PolicyStatus:    "BELUM_TERVERIFIKASI",
		PolicyProcess:   "DIAJUKAN",
	}
	for _, opt := range opts {
		opt(policy)
	}
	if err := db.Create(policy).Error; err != nil {
		t.Fatalf("gagal membuat kebijakan test: %v", err)
	}
	return policy
}

// CreateUser menyimpan user aktif dengan satu role.
func CreateUser(t *testing.T, db *gorm.DB, roleName string) *userModel.UserModel {
	t.Helper()

	role := userModel.RoleModel{RoleName: roleName}
	if err := db.Where("role_name = ?", roleName).FirstOrCreate(&role).Error; err != nil {
		t.Fatalf("gagal membuat role test: %v", err)
	}

	user := &userModel.UserModel{
		UserName: "Pengguna Uji",
		Email:    fmt.Sprintf("uji-%s@example.go.id", uuid.NewString()[:8]),
		Password: "rahasia-terhash",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("gagal membuat user test: %v", err)
	}
	if err := db.Create(&userModel.UserRoleModel{UserID: user.UserID, RoleID: role.RoleID}).Error; err != nil {
		t.Fatalf("gagal menautkan role test: %v", err)
	}
	user.Roles = []userModel.RoleModel{role}
	return user
}

// ===================== HTTP HELPER =====================

// JSONRequest membangun *http.Request berbadan JSON untuk app.Test.
func JSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("gagal encode body request: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeBody membaca body response JSON ke map.
func DecodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("gagal decode body response: %v", err)
	}
	return out
}
