package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment string `json:"environment"`
	ProjectName string `json:"project_name"`
	ServerPort  string `json:"server_port"`

	// SMTP probe behaviour
	ProbeTimeout time.Duration `json:"probe_timeout"`
	ProbeFrom    string        `json:"probe_from"`
	HeloHost     string        `json:"helo_host"`

	// External APIs
	HIBPAPIKey string `json:"-"`
	SentryDSN  string `json:"-"`

	// HTTP surface
	CORSOrigins        []string    `json:"cors_origins"`
	RateLimitPerMinute int         `json:"rate_limit_per_minute"`
	Redis              RedisConfig `json:"redis"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	envLoaded = godotenv.Load() == nil
}

func LoadConfig() error {
	AppConfig = Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ProjectName: getEnv("PROJECT_NAME", "OSINT Intelligence Platform"),
		ServerPort:  getEnv("SERVER_PORT", "8000"),

		ProbeTimeout: time.Duration(getEnvAsInt("SMTP_PROBE_TIMEOUT_SECONDS", 10)) * time.Second,
		ProbeFrom:    getEnv("SMTP_PROBE_FROM", "verify@example.com"),
		HeloHost:     getEnv("SMTP_HELO_HOST", defaultHeloHost()),

		HIBPAPIKey: getEnv("HIBP_API_KEY", ""),
		SentryDSN:  getEnv("SENTRY_DSN", ""),

		CORSOrigins:        splitAndTrim(getEnv("BACKEND_CORS_ORIGINS", "*")),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if AppConfig.ProbeTimeout <= 0 {
		return fmt.Errorf("SMTP_PROBE_TIMEOUT_SECONDS must be positive")
	}
	if AppConfig.Redis.Enabled && AppConfig.Redis.Address == "" {
		return fmt.Errorf("REDIS_ADDRESS is required when REDIS_ENABLED is true")
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// defaultHeloHost returns the machine's own hostname for the HELO greeting,
// falling back to localhost when it cannot be determined.
func defaultHeloHost() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "localhost"
	}
	return hostname
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("SMTP probe: from=%s helo=%s timeout=%s",
		AppConfig.ProbeFrom,
		AppConfig.HeloHost,
		AppConfig.ProbeTimeout)
	log.Printf("External APIs: HIBP(%t), Sentry(%t)",
		AppConfig.HIBPAPIKey != "",
		AppConfig.SentryDSN != "")
}
