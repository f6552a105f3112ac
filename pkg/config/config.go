package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LLM providers understood by the report generator.
const (
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Log        LogConfig
	LLM        LLMConfig
	Classifier ClassifierConfig
	KPI        KPIConfig
	Reports    ReportsConfig
	RateLimit  RateLimitConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// LLMConfig selects and tunes the text-generation backend used for manager reports.
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// ClassifierConfig points at the sentiment classification service.
type ClassifierConfig struct {
	BaseURL string
	Timeout time.Duration
}

// KPIConfig tunes the deterministic aggregator.
type KPIConfig struct {
	WeakSkillThreshold float64
	NormalizerDefault  int
}

// ReportsConfig bounds generation-backed requests.
type ReportsConfig struct {
	RequestTimeout time.Duration
}

// RateLimitConfig throttles generation-backed endpoints per user.
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
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
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Issuer:     v.GetString("JWT_ISSUER"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.LLM = LLMConfig{
		Provider:    strings.ToLower(v.GetString("LLM_PROVIDER")),
		APIKey:      v.GetString("LLM_API_KEY"),
		BaseURL:     v.GetString("LLM_BASE_URL"),
		Model:       v.GetString("LLM_MODEL"),
		Temperature: v.GetFloat64("LLM_TEMPERATURE"),
		MaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
		Timeout:     parseDuration(v.GetString("LLM_TIMEOUT"), 60*time.Second),
	}

	cfg.Classifier = ClassifierConfig{
		BaseURL: v.GetString("CLASSIFIER_BASE_URL"),
		Timeout: parseDuration(v.GetString("CLASSIFIER_TIMEOUT"), 30*time.Second),
	}

	threshold := v.GetFloat64("KPI_WEAK_SKILL_THRESHOLD")
	if threshold < 0 || threshold >= 1 {
		threshold = 0.1
	}
	cfg.KPI = KPIConfig{
		WeakSkillThreshold: threshold,
		NormalizerDefault:  v.GetInt("KPI_NORMALIZER_DEFAULT"),
	}

	cfg.Reports = ReportsConfig{
		RequestTimeout: parseDuration(v.GetString("REPORT_REQUEST_TIMEOUT"), 90*time.Second),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
		Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
		Window:   parseDuration(v.GetString("RATE_LIMIT_WINDOW"), time.Minute),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "team_pulse")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_ISSUER", "team-pulse")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("LLM_PROVIDER", LLMProviderOpenAI)
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_BASE_URL", "")
	v.SetDefault("LLM_MODEL", "")
	v.SetDefault("LLM_TEMPERATURE", 0)
	v.SetDefault("LLM_MAX_TOKENS", 1200)
	v.SetDefault("LLM_TIMEOUT", "60s")

	v.SetDefault("CLASSIFIER_BASE_URL", "http://127.0.0.1:8000")
	v.SetDefault("CLASSIFIER_TIMEOUT", "30s")

	v.SetDefault("KPI_WEAK_SKILL_THRESHOLD", 0.1)
	v.SetDefault("KPI_NORMALIZER_DEFAULT", 0)
	v.SetDefault("REPORT_REQUEST_TIMEOUT", "90s")

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
}

// isMissingFile treats an absent .env as "use environment only".
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
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
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
