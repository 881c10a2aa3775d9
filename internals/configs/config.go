package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	SMTPHost         string
	SMTPPort         string
	SMTPSender       string
	SMTPPassword     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	SMTPHost = os.Getenv("SMTP_HOST")
	SMTPPort = GetEnvOr("SMTP_PORT", "587")
	SMTPSender = os.Getenv("SMTP_SENDER")
	SMTPPassword = os.Getenv("SMTP_PASSWORD")
}

// GetEnv mengambil ENV wajib; log warning kalau kosong
func GetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Printf("⚠️ ENV %s belum diset", key)
	}
	return val
}

// GetEnvOr mengambil ENV dengan nilai default
func GetEnvOr(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
