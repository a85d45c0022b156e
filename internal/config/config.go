package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	RiskDBPath    string
	MapboxToken   string
	CellSizeDeg   float64 // grid cell edge in degrees, must match the builder's
	JWTSecret     string
	AdminUser     string
	AdminPassHash string // bcrypt hash; the plaintext never reaches the process
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("RISK_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/risk/risk.db"
	}

	cellSize := 0.0016 // ~175 m at Vancouver latitude
	if v := os.Getenv("CELL_SIZE_DEG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cellSize = f
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}

	return &Config{
		Port:          port,
		RiskDBPath:    dbPath,
		MapboxToken:   os.Getenv("MAPBOX_TOKEN"),
		CellSizeDeg:   cellSize,
		JWTSecret:     jwtSecret,
		AdminUser:     adminUser,
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
	}
}
