package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultRequestTimeout         = 5 * time.Second
	defaultSessionTokenTTL        = 12 * time.Hour
	defaultSessionIdleTTL         = 30 * time.Minute
	defaultSessionCleanupInterval = time.Minute
	defaultNotificationTTL        = 5 * time.Second

	// Эр-Рияд
	defaultMapCenterLat = 24.7136
	defaultMapCenterLng = 46.6753

	minSessionSecretLength = 32
)

type (
	Tasks struct {
		SessionCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // скорость пополнения token bucket
		RateLimiterBurst int           // ёмкость token bucket
		PprofEnabled     bool
		PprofPort        string
	}

	Session struct {
		Secret   string
		TokenTTL time.Duration
		IdleTTL  time.Duration
	}

	Notification struct {
		TTL time.Duration
	}

	Map struct {
		CenterLat float64
		CenterLng float64
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Session      Session
		Notification Notification
		Map          Map
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_SESSION_CLEANUP_INTERVAL", defaultSessionCleanupInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("SESSION_TOKEN_TTL", defaultSessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idleTTL, err := osGetEnvDuration("SESSION_IDLE_TTL", defaultSessionIdleTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationTTL, err := osGetEnvDuration("NOTIFICATION_TTL", defaultNotificationTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	centerLat, err := osGetFloat("MAP_CENTER_LAT", defaultMapCenterLat)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	centerLng, err := osGetFloat("MAP_CENTER_LNG", defaultMapCenterLng)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			SessionCleanupInterval: cleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Session: Session{
			Secret:   os.Getenv("SESSION_SECRET"),
			TokenTTL: tokenTTL,
			IdleTTL:  idleTTL,
		},
		Notification: Notification{
			TTL: notificationTTL,
		},
		Map: Map{
			CenterLat: centerLat,
			CenterLng: centerLng,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if len(cfg.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLength)
	}
	if cfg.Session.TokenTTL <= 0 {
		return errors.New("SESSION_TOKEN_TTL must be positive")
	}
	if cfg.Session.IdleTTL <= 0 {
		return errors.New("SESSION_IDLE_TTL must be positive")
	}

	if cfg.Tasks.SessionCleanupInterval <= 0 {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL must be positive")
	}
	if cfg.Notification.TTL <= 0 {
		return errors.New("NOTIFICATION_TTL must be positive")
	}

	if cfg.Map.CenterLat < -90 || cfg.Map.CenterLat > 90 {
		return errors.New("MAP_CENTER_LAT must be within [-90, 90]")
	}
	if cfg.Map.CenterLng < -180 || cfg.Map.CenterLng > 180 {
		return errors.New("MAP_CENTER_LNG must be within [-180, 180]")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
