package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DataDir   string
	Env       string
	JWTSecret string
	JWTTTL    time.Duration

	// SkipMissingDish replicates the legacy behavior of silently dropping
	// cart lines whose dish id no longer resolves.
	SkipMissingDish bool

	ManagerUsername string
	ManagerPassword string
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8000"),
		DataDir:         getEnv("DATA_DIR", "data"),
		Env:             getEnv("APP_ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          24 * time.Hour,
		SkipMissingDish: getEnv("CART_SKIP_MISSING_DISH", "false") == "true",
		ManagerUsername: os.Getenv("MANAGER_USERNAME"),
		ManagerPassword: os.Getenv("MANAGER_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
