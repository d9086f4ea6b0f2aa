package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Metadata  MetadataConfig  `yaml:"metadata"`
	LLM       LLMConfig       `yaml:"llm"`
	Plan      PlanConfig      `yaml:"plan"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns the allowed origins as a trimmed list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns the allowed methods as a trimmed list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns the allowed headers as a trimmed list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"./migrations"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"stash"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	MinPasswordLen   int           `yaml:"min_password_len"   env:"AUTH_MIN_PASSWORD_LEN"   env-default:"6"`
}

// MetadataConfig holds settings for fetching saved pages.
type MetadataConfig struct {
	Timeout     time.Duration `yaml:"timeout"       env:"METADATA_TIMEOUT"        env-default:"10s"`
	UserAgent   string        `yaml:"user_agent"    env:"METADATA_USER_AGENT"     env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
	MaxTitleLen int           `yaml:"max_title_len" env:"METADATA_MAX_TITLE_LEN"  env-default:"200"`
}

// LLMConfig holds chat-completion client settings. An empty APIKey disables
// every LLM-backed operation.
type LLMConfig struct {
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"30s"`
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool { return strings.TrimSpace(c.APIKey) != "" }

// PlanConfig holds subscription plan settings.
type PlanConfig struct {
	ProDuration          time.Duration `yaml:"pro_duration"           env:"PLAN_PRO_DURATION"           env-default:"720h"`
	ItemWarningThreshold int           `yaml:"item_warning_threshold" env:"PLAN_ITEM_WARNING_THRESHOLD" env-default:"45"`
	GateAIFeatures       bool          `yaml:"gate_ai_features"       env:"PLAN_GATE_AI_FEATURES"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds request rate limits per minute. Zero disables a limit.
type RateLimitConfig struct {
	PerIP       int `yaml:"per_ip"        env:"RATE_LIMIT_PER_IP"        env-default:"120"`
	PerUserFree int `yaml:"per_user_free" env:"RATE_LIMIT_PER_USER_FREE" env-default:"60"`
	PerUserPro  int `yaml:"per_user_pro"  env:"RATE_LIMIT_PER_USER_PRO"  env-default:"300"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
