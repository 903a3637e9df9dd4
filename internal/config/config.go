package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	DefaultAppPort            = "8000"
	DefaultRateLimitPerMinute = 100
	RateLimitWindow           = time.Minute
	LDConnectionTimeout       = 5 * time.Second

	// five-field cron schedule for purging closed rate limit windows
	RateLimitCleanupSchedule = "*/15 * * * *"
)

// build-time overrides, set with -ldflags
var (
	AppName             = "real-estate-tracker"
	AppVersion          = "dev"
	LDServerContextKey  = "real-estate-tracker"
	LDServerContextKind = "service"
)

type Config struct {
	AppName       string
	AppVersion    string
	AppPort       string
	AppUrl        string
	DatabaseURL   string
	StorageDriver string

	// Flag snapshots; env values unless LaunchDarkly overrides them.
	LDFlag_SeedDbWithTestData bool
	LDFlag_CORSHighSecurity   bool
	LDFlag_RateLimitPerMinute int
}

// flagSource is the subset of *ld.LDClient used to read flags.
type flagSource interface {
	BoolVariation(key string, context ldcontext.Context, defaultVal bool) (bool, error)
	IntVariation(key string, context ldcontext.Context, defaultVal int) (int, error)
}

// LoadConfig reads an optional .env file, then the environment, then
// LaunchDarkly when LD_SDK_KEY is set.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if sdkKey := os.Getenv("LD_SDK_KEY"); sdkKey != "" {
		ldClient, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
		if err != nil {
			return nil, fmt.Errorf("create LaunchDarkly client: %w", err)
		}
		defer ldClient.Close()
		if !ldClient.Initialized() {
			return nil, errors.New("LaunchDarkly client failed to initialize")
		}
		if err := cfg.applyFlags(ldClient, ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)); err != nil {
			return nil, err
		}
	} else {
		utils.Logger.Debug("LD_SDK_KEY not set; feature flags come from the environment")
	}

	utils.Logger.Infof("Loaded config for %s (%s, storage=%s)", cfg.AppName, cfg.AppVersion, cfg.StorageDriver)
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		AppName:       AppName,
		AppVersion:    AppVersion,
		AppPort:       envOr("APP_PORT", DefaultAppPort),
		AppUrl:        os.Getenv("APP_URL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		StorageDriver: strings.ToLower(envOr("STORAGE_DRIVER", StorageDriverPostgres)),
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, utils.ErrMissingDatabaseURL
		}
	case StorageDriverMemory:
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidStorageDriver, cfg.StorageDriver)
	}

	var err error
	if cfg.LDFlag_SeedDbWithTestData, err = envBool("SEED_DB_WITH_TEST_DATA", false); err != nil {
		return nil, err
	}
	if cfg.LDFlag_CORSHighSecurity, err = envBool("CORS_HIGH_SECURITY", false); err != nil {
		return nil, err
	}
	if cfg.LDFlag_RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute); err != nil {
		return nil, err
	}
	if cfg.LDFlag_RateLimitPerMinute < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.LDFlag_RateLimitPerMinute)
	}
	return cfg, nil
}

// applyFlags overrides env-derived flag values, using them as defaults.
func (c *Config) applyFlags(src flagSource, ctx ldcontext.Context) error {
	seed, err := src.BoolVariation("seed_db_with_test_data", ctx, c.LDFlag_SeedDbWithTestData)
	if err != nil {
		return fmt.Errorf("seed_db_with_test_data flag: %w", err)
	}
	utils.Logger.Debugf("seed_db_with_test_data flag: %t", seed)

	corsHigh, err := src.BoolVariation("cors_high_security", ctx, c.LDFlag_CORSHighSecurity)
	if err != nil {
		return fmt.Errorf("cors_high_security flag: %w", err)
	}
	utils.Logger.Debugf("cors_high_security flag: %t", corsHigh)

	limit, err := src.IntVariation("rate_limit_per_minute", ctx, c.LDFlag_RateLimitPerMinute)
	if err != nil {
		return fmt.Errorf("rate_limit_per_minute flag: %w", err)
	}
	if limit < 1 {
		return fmt.Errorf("rate_limit_per_minute flag must be positive, got %d", limit)
	}
	utils.Logger.Debugf("rate_limit_per_minute flag: %d", limit)

	c.LDFlag_SeedDbWithTestData = seed
	c.LDFlag_CORSHighSecurity = corsHigh
	c.LDFlag_RateLimitPerMinute = limit
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
