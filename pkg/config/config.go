package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Roster RosterConfig
	Notify NotifyConfig
	Export ExportConfig
	CORS   CORSConfig
	Log    LogConfig
}

// RosterConfig locates the remote student/teacher CSV documents.
type RosterConfig struct {
	StudentsURL  string
	TeachersURL  string
	FetchTimeout time.Duration
}

// NotifyConfig controls the best-effort lesson notification channel.
type NotifyConfig struct {
	Enabled     bool
	ResendKey   string
	FromAddress string
	Workers     int
	MaxRetries  int
	RetryDelay  time.Duration
}

// ExportConfig names the download artifact offered to clients.
type ExportConfig struct {
	Filename string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Roster = RosterConfig{
		StudentsURL:  v.GetString("ROSTER_STUDENTS_URL"),
		TeachersURL:  v.GetString("ROSTER_TEACHERS_URL"),
		FetchTimeout: parseDuration(v.GetString("ROSTER_FETCH_TIMEOUT"), 10*time.Second),
	}

	cfg.Notify = NotifyConfig{
		Enabled:     v.GetBool("NOTIFY_ENABLED"),
		ResendKey:   v.GetString("RESEND_API_KEY"),
		FromAddress: v.GetString("NOTIFY_FROM_ADDRESS"),
		Workers:     v.GetInt("NOTIFY_WORKERS"),
		MaxRetries:  v.GetInt("NOTIFY_MAX_RETRIES"),
		RetryDelay:  parseDuration(v.GetString("NOTIFY_RETRY_DELAY"), time.Second),
	}

	cfg.Export = ExportConfig{
		Filename: v.GetString("EXPORT_FILENAME"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("ROSTER_STUDENTS_URL", "")
	v.SetDefault("ROSTER_TEACHERS_URL", "")
	v.SetDefault("ROSTER_FETCH_TIMEOUT", "10s")
	v.SetDefault("NOTIFY_ENABLED", false)
	v.SetDefault("NOTIFY_WORKERS", 1)
	v.SetDefault("NOTIFY_MAX_RETRIES", 3)
	v.SetDefault("NOTIFY_RETRY_DELAY", "1s")
	v.SetDefault("EXPORT_FILENAME", "桌球課程記錄")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
