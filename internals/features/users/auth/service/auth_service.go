package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ikk_backend/internals/configs"
	authModel "ikk_backend/internals/features/users/auth/model"
	userModel "ikk_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

/* ==========================
   Password
========================== */

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

/* ==========================
   Token issue & rotate
========================== */

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// IssueAccessToken membuat access JWT dengan klaim id, user_name, role, agency_id.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.RoleName(),
		"exp":       time.Now().Add(accessTTLDefault).Unix(),
	}
	if user.AgencyID != nil {
		claims["agency_id"] = user.AgencyID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IssueRefreshToken membuat refresh JWT dan menyimpan hash-nya di DB.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	exp := time.Now().Add(refreshTTLDefault)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": exp.Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshToken{
		UserID:    userID,
		Token:     ComputeRefreshHash(token, secret),
		ExpiredAt: exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ComputeRefreshHash meng-hash refresh token sebelum disimpan (HMAC-SHA256).
func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// RotateRefreshToken memvalidasi refresh token lama, menghapus hash-nya, dan
// mengembalikan user id pemilik. Error 401 kalau token tidak dikenal/invalid.
func RotateRefreshToken(db *gorm.DB, rawToken string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}

	tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := ComputeRefreshHash(rawToken, secret)
	res := db.Where("token = ?", hash).Delete(&authModel.RefreshToken{})
	if res.Error != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}
	return userID, nil
}

// BlacklistToken memasukkan access token ke blacklist sampai kadaluarsa.
func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}
