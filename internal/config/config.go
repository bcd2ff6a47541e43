package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Log       LogConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	PayOS     PayOSConfig
	VietQR    VietQRConfig
	GameAPI   GameAPIConfig
	Deposit   DepositConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Worker    WorkerConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"SERVER_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"casino"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// DSN builds a postgres:// connection string usable by both pgxpool and the migrator.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"true"`
}

type AuthConfig struct {
	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY"`
	JWTSecret       string `env:"SUPABASE_JWT_SECRET"`
	JWTAudience     string `env:"SUPABASE_JWT_AUDIENCE" envDefault:"authenticated"`
	AdminRole       string `env:"AUTH_ADMIN_ROLE" envDefault:"admin"`
}

type PayOSConfig struct {
	BaseURL          string        `env:"PAYOS_BASE_URL" envDefault:"https://api-merchant.payos.vn"`
	ClientID         string        `env:"PAYOS_CLIENT_ID"`
	APIKey           string        `env:"PAYOS_API_KEY"`
	ChecksumKey      string        `env:"PAYOS_CHECKSUM_KEY"`
	ReturnURL        string        `env:"PAYOS_RETURN_URL"`
	CancelURL        string        `env:"PAYOS_CANCEL_URL"`
	Timeout          time.Duration `env:"PAYOS_TIMEOUT" envDefault:"15s"`
	RequireSignature bool          `env:"PAYOS_REQUIRE_SIGNATURE" envDefault:"false"`
}

type VietQRConfig struct {
	BankID      string `env:"VIETQR_BANK_ID"`
	AccountNo   string `env:"VIETQR_ACCOUNT_NO"`
	AccountName string `env:"VIETQR_ACCOUNT_NAME"`
	Template    string `env:"VIETQR_TEMPLATE" envDefault:"compact2"`
}

type GameAPIConfig struct {
	BaseURL    string        `env:"GAME_API_URL"`
	CompanyKey string        `env:"GAME_API_COMPANY_KEY"`
	ServerID   string        `env:"GAME_API_SERVER_ID" envDefault:"casino-backend"`
	Locale     string        `env:"GAME_API_LOCALE" envDefault:"vi-vn"`
	Timeout    time.Duration `env:"GAME_API_TIMEOUT" envDefault:"15s"`
}

type DepositConfig struct {
	MinAmount      int64         `env:"DEPOSIT_MIN_AMOUNT" envDefault:"0"`
	MaxAmount      int64         `env:"DEPOSIT_MAX_AMOUNT" envDefault:"0"`
	PaymentLinkTTL time.Duration `env:"PAYMENT_LINK_TTL" envDefault:"30m"`
	WebhookLockTTL time.Duration `env:"WEBHOOK_LOCK_TTL" envDefault:"30s"`
}

type RateLimitConfig struct {
	DepositsPerMinute int     `env:"RATE_LIMIT_DEPOSITS_PER_MINUTE" envDefault:"5"`
	IPRequestsPerSec  float64 `env:"RATE_LIMIT_IP_RPS" envDefault:"10"`
	IPBurst           int     `env:"RATE_LIMIT_IP_BURST" envDefault:"20"`
}

type CacheConfig struct {
	GameListTTL time.Duration `env:"GAME_CACHE_TTL" envDefault:"5m"`
}

type WorkerConfig struct {
	ExpiryInterval time.Duration `env:"WORKER_EXPIRY_INTERVAL" envDefault:"1m"`
	ExpiryBatch    int           `env:"WORKER_EXPIRY_BATCH" envDefault:"50"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
