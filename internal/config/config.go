package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lostxrotimi/service-studio/internal/common/database"
)

// S3Config describes the object store bucket.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// KafkaConfig describes the content event bus. No brokers disables it.
type KafkaConfig struct {
	Brokers     []string
	Topic       string
	GroupPrefix string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret    string
	AccessTTL time.Duration
}

// GeminiConfig holds caption generator settings. An empty key disables captions.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ServiceConfig holds all configuration for the studio service.
type ServiceConfig struct {
	Port              string
	AppEnv            string
	InstanceID        string
	DBConfig          database.PostgresConfig
	S3Config          S3Config
	KafkaConfig       KafkaConfig
	JWTConfig         JWTConfig
	GeminiConfig      GeminiConfig
	AdminPasswordHash string
	LocalStorePath    string
	CORSOrigins       []string
}

// Load reads configuration from an optional .env file and STUDIO_* environment variables.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &ServiceConfig{
		Port:       normalizePort(v.GetString("SERVICE_PORT")),
		AppEnv:     v.GetString("APP_ENV"),
		InstanceID: v.GetString("INSTANCE_ID"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		S3Config: S3Config{
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			Bucket:    v.GetString("S3_BUCKET"),
			UseSSL:    v.GetBool("S3_USE_SSL"),
			PublicURL: v.GetString("S3_PUBLIC_URL"),
		},
		KafkaConfig: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			Topic:       v.GetString("KAFKA_TOPIC"),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		JWTConfig: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			AccessTTL: v.GetDuration("JWT_ACCESS_TTL"),
		},
		GeminiConfig: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		LocalStorePath:    v.GetString("LOCAL_STORE_PATH"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.S3Config.PublicURL == "" {
		scheme := "http://"
		if cfg.S3Config.UseSSL {
			scheme = "https://"
		}
		cfg.S3Config.PublicURL = scheme + cfg.S3Config.Endpoint
	}

	if cfg.AppEnv == "production" && cfg.JWTConfig.Secret == "" {
		return nil, errors.New("STUDIO_JWT_SECRET is required in production")
	}
	if cfg.JWTConfig.Secret == "" {
		cfg.JWTConfig.Secret = "development-secret"
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("INSTANCE_ID", "studio-1")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "studio")
	v.SetDefault("DB_PASSWORD", "studio")
	v.SetDefault("DB_NAME", "studio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("S3_ENDPOINT", "localhost:9000")
	v.SetDefault("S3_BUCKET", "portfolio")
	v.SetDefault("S3_USE_SSL", false)
	v.SetDefault("KAFKA_TOPIC", "content.events")
	v.SetDefault("KAFKA_GROUP_PREFIX", "studio-")
	v.SetDefault("JWT_ACCESS_TTL", 12*time.Hour)
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-image")
	v.SetDefault("LOCAL_STORE_PATH", "data/local.db")
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
