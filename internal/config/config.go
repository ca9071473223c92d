package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"github.com/Ahmed-hessen/E-shop/internal/storage"
)

type Config struct {
	Addr    string
	DSN     string
	GinMode string

	// MetricsAddr, when set, serves /metrics on its own listener.
	MetricsAddr string

	FlashSecret   []byte
	FlashCookie   string
	SessionCookie string
	CookieSecure  bool
	CSRFCookie    string
	SessionTTL    time.Duration

	// ProjectionTTL bounds how long a cached admin/storefront read stays valid
	// when no mutation invalidates it first. Zero keeps entries until invalidated.
	ProjectionTTL time.Duration
	Currency      string

	Storage storage.Settings
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          envOr("HTTP_ADDR", ":8080"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		GinMode:       envOr("GIN_MODE", "release"),
		FlashSecret:   []byte(envOr("FLASH_SECRET", "")),
		FlashCookie:   envOr("FLASH_COOKIE", "eshop_flash"),
		SessionCookie: envOr("SESSION_COOKIE", "eshop_session"),
		CSRFCookie:    envOr("CSRF_COOKIE", "eshop_csrf"),
		Currency:      strings.ToUpper(envOr("CURRENCY", "USD")),
		Storage: storage.Settings{
			Driver:         strings.ToLower(envOr("STORAGE_DRIVER", storage.DriverLocal)),
			LocalDir:       envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix: envOr("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3: storage.S3Config{
				Region:        os.Getenv("S3_REGION"),
				Bucket:        os.Getenv("S3_BUCKET"),
				Prefix:        envOr("S3_PREFIX", "products"),
				PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
			},
		},
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, errors.New("DB_DSN environment variable is required")
	}
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return Config{}, err
	}
	cfg.DSN = normalized

	if len(cfg.FlashSecret) < 16 {
		return Config{}, errors.New("FLASH_SECRET must be at least 16 bytes")
	}
	if err := cfg.Storage.Validate(); err != nil {
		return Config{}, err
	}

	if cfg.CookieSecure, err = boolEnv("COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ProjectionTTL, err = durationEnv("PROJECTION_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NormalizeDSN parses a MySQL DSN and forces parseTime so DATETIME columns
// scan into time.Time.
func NormalizeDSN(dsn string) (string, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid DB_DSN: %w", err)
	}
	mc.ParseTime = true
	return mc.FormatDSN(), nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", k, err)
	}
	return b, nil
}

func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return d, nil
}
