package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "ikk_backend/internals/features/users/auth/service"
	userModel "ikk_backend/internals/features/users/user/model"
	helper "ikk_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= REGISTER ======================= */
// POST /api/auth/register — akun baru berstatus non_aktif sampai disetujui admin.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req struct {
		UserName string     `json:"user_name" validate:"required,min=3,max=100"`
		Email    string     `json:"email" validate:"required,email"`
		Password string     `json:"password" validate:"required,min=8"`
		Role     string     `json:"role" validate:"required"`
		AgencyID *uuid.UUID `json:"agency_id" validate:"omitempty"`
		WorkUnit *string    `json:"work_unit" validate:"omitempty,max=255"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var role userModel.RoleModel
	if err := h.DB.Where("role_name = ?", req.Role).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal: "+req.Role)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa role")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		AgencyID: req.AgencyID,
		WorkUnit: req.WorkUnit,
		IsActive: false,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.UserRoleModel{
			UserID: user.UserID,
			RoleID: role.RoleID,
		}).Error
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal registrasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal registrasi")
	}

	return helper.JsonCreated(c, "Registrasi berhasil, menunggu persetujuan admin", fiber.Map{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user userModel.UserModel
	if err := h.DB.Preload("Roles").
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa user")
	}

	if err := authService.CheckPassword(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum disetujui admin")
	}

	accessToken, err := authService.IssueAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal issue access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refreshToken, err := authService.IssueRefreshToken(h.DB, user.UserID)
	if err != nil {
		log.Println("[ERROR] Gagal issue refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setRefreshCookie(c, refreshToken)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.RoleName(),
			"agency_id": user.AgencyID,
		},
	})
}

/* ======================= REFRESH ======================= */
// POST /api/auth/refresh-token — rotasi refresh token dari cookie.
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := authService.RotateRefreshToken(h.DB, raw)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.Preload("Roles").Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	accessToken, err := authService.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refreshToken, err := authService.IssueRefreshToken(h.DB, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setRefreshCookie(c, refreshToken)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": accessToken,
	})
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout — blacklist access token sampai exp-nya.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan di header")
	}
	tokenString := fields[1]

	// Ambil exp tanpa verifikasi penuh; token rusak cukup di-blacklist 24 jam
	expiredAt := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := authService.BlacklistToken(h.DB, tokenString, expiredAt); err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		Path:     "/api/auth",
	})
}
