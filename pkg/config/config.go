package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every external dependency setting. It is loaded once in main
// and handed to each component explicitly; nothing reads the environment
// after startup.
type Config struct {
	Env  string // development | production
	Port string

	DatabaseURL string

	JWTSecret string
	JWTIssuer string

	// Google Sheets ledger
	SpreadsheetID     string
	GoogleCredentials string // path to the service-account JSON key
	WasteSheet        string
	ProductSheet      string
	CountSheet        string

	ReconcileCronSpec string
	CORSAllowOrigins  string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	return Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "3000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTIssuer: getEnv("JWT_ISSUER", "go-inventory-ledger"),

		SpreadsheetID:     getEnv("SPREADSHEET_ID", ""),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS_FILE", "google_credentials.json"),
		// Tab names match the existing spreadsheet, typo included.
		WasteSheet:   getEnv("WASTE_SHEET", "WasteManagment"),
		ProductSheet: getEnv("PRODUCT_SHEET", "ProductManagement"),
		CountSheet:   getEnv("COUNT_SHEET", "Count"),

		ReconcileCronSpec: getEnv("RECONCILE_CRON", "0 0 * * *"),
		CORSAllowOrigins:  getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
	}
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
