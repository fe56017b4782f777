package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"p9e.in/treeflow/logging"
)

// Config is the process configuration. Every field can be set from the
// environment variable of the same name in upper case (DB_POOL_MAX, ...).
type Config struct {
	Port string `koanf:"port"`

	DBDriver      string        `koanf:"db_driver"`
	DBDSN         string        `koanf:"db_dsn"`
	DBServer      string        `koanf:"db_server"`
	DBPort        int           `koanf:"db_port"`
	DBUser        string        `koanf:"db_user"`
	DBPassword    string        `koanf:"db_password"`
	DBDatabase    string        `koanf:"db_database"`
	DBPoolMax     int           `koanf:"db_pool_max"`
	DBPoolMin     int           `koanf:"db_pool_min"`
	DBIdleTimeout time.Duration `koanf:"db_idle_timeout"`
	DBAutoMigrate bool          `koanf:"db_auto_migrate"`

	JWTSecret    string `koanf:"jwt_secret"`
	JWTExpiresIn string `koanf:"jwt_expires_in"`
	RequireAuth  bool   `koanf:"require_auth"`

	UploadDir string `koanf:"upload_dir"`
	UseGCS    bool   `koanf:"use_gcs"`
	GCSBucket string `koanf:"gcs_bucket"`
	KService  string `koanf:"k_service"`

	CORSOrigins    string `koanf:"cors_origins"`
	LoginRateLimit int    `koanf:"login_rate_limit"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// Drivers accepted in DB_DRIVER.
const (
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
	DriverMySQL     = "mysql"
	DriverSQLite    = "sqlite"
)

func defaults() Config {
	return Config{
		Port:           "5000",
		DBDriver:       DriverPostgres,
		DBServer:       "localhost",
		DBDatabase:     "treeflow",
		DBPoolMax:      200,
		DBPoolMin:      2,
		DBIdleTimeout:  30 * time.Second,
		JWTExpiresIn:   "1h",
		UploadDir:      "./uploads",
		CORSOrigins:    "*",
		LoginRateLimit: 10,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load reads .env (if present) and the environment on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Info().Msg("no .env file found, using system environment variables")
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	known := make(map[string]bool)
	for _, key := range k.Keys() {
		known[key] = true
	}
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLServer, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := c.TokenTTL(); err != nil {
		return err
	}
	if c.DBPoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be positive")
	}
	if c.DBPoolMin < 0 || c.DBPoolMin > c.DBPoolMax {
		return fmt.Errorf("DB_POOL_MIN must be between 0 and DB_POOL_MAX")
	}
	if c.UseGCS && c.GCSBucket == "" {
		return fmt.Errorf("GCS_BUCKET is required when USE_GCS is set")
	}
	return nil
}

// TokenTTL parses JWT_EXPIRES_IN. Accepts Go durations ("90m"), plain
// seconds ("3600") and whole days ("7d").
func (c *Config) TokenTTL() (time.Duration, error) {
	return ParseExpiry(c.JWTExpiresIn)
}

func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("JWT_EXPIRES_IN is empty")
	}
	var d time.Duration
	if secs, err := strconv.Atoi(s); err == nil {
		d = time.Duration(secs) * time.Second
	} else if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid JWT_EXPIRES_IN %q", s)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", s, err)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	return d, nil
}

// StorageBackend reports which photo store to use. Cloud Run sets
// K_SERVICE, which implies GCS when a bucket is configured.
func (c *Config) StorageBackend() string {
	if c.UseGCS || (c.KService != "" && c.GCSBucket != "") {
		return "gcs"
	}
	return "local"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
