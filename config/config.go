package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Env           string
	Timezone      string
	DBPath        string
	JWTSecret     string
	HFToken       string
	WeatherAPIKey string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Env:           get("ENV", "development"),
		Timezone:      get("TZ", "Asia/Kolkata"),
		DBPath:        get("DB_PATH", "agriai.db"),
		JWTSecret:     get("JWT_SECRET", "change_me"),
		HFToken:       get("HF_TOKEN", ""),
		WeatherAPIKey: get("WEATHER_API_KEY", ""),
	}
	log.Printf("[cfg] port=%s env=%s db=%s hf_token=%t weather_key=%t",
		cfg.Port, cfg.Env, cfg.DBPath, cfg.HFToken != "", cfg.WeatherAPIKey != "")
	return cfg
}
