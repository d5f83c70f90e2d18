package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBDSN             string
	CatalogFile       string
	TemplatesDir      string
	LogFile           string
	RateLimitPerMin   int
	SearchLimitPerMin int
}

func Load() Config {
	// .env files are optional; real env vars win over both
	_ = godotenv.Load(".env.local", ".env")

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DBDSN:             getEnv("DB_DSN", "dealership.db"), // sqlite file in project root
		CatalogFile:       os.Getenv("CATALOG_FILE"),         // empty means the embedded dataset
		TemplatesDir:      getEnv("TEMPLATES_DIR", "./web/templates"),
		LogFile:           os.Getenv("LOG_FILE"),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MIN", 60),
		SearchLimitPerMin: getEnvInt("SEARCH_RATE_LIMIT_PER_MIN", 30),
	}
	catalog := cfg.CatalogFile
	if catalog == "" {
		catalog = "(embedded)"
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CATALOG_FILE=%s TEMPLATES_DIR=%s LOG_FILE=%s RATE=%d/min SEARCH_RATE=%d/min",
		cfg.Port, cfg.DBDSN, catalog, cfg.TemplatesDir, cfg.LogFile, cfg.RateLimitPerMin, cfg.SearchLimitPerMin)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
