package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Swagger SwaggerConfig `mapstructure:"swagger"`
	Caller  CallerConfig  `mapstructure:"caller"`

	// File is the config file that was read, empty when running on defaults and env only.
	File string `mapstructure:"-"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port                int           `mapstructure:"port"`
	Host                string        `mapstructure:"host"`
	Mode                string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout         time.Duration `mapstructure:"read_timeout"`
	WriteTimeout        time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout     time.Duration `mapstructure:"shutdown_timeout"`
	ReadinessDrainDelay time.Duration `mapstructure:"readiness_drain_delay"`
	MaxMultipartMemory  int64         `mapstructure:"max_multipart_memory"` // bytes kept in memory per multipart form
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds zap logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"` // OTLP HTTP collector, host:port
	SampleRate  float64 `mapstructure:"sample_rate"`
	ServiceName string  `mapstructure:"service_name"`
}

// SwaggerConfig toggles the Swagger UI
type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CallerConfig names the header an upstream gateway uses to pass the authenticated caller id.
type CallerConfig struct {
	Header string `mapstructure:"header"`
}

// Load reads configuration from a config file, .env and environment variables.
// paths overrides the directories searched for config.yaml.
func Load(paths ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config", "/app/config", "/app"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// --- Set Default Values ---
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.readiness_drain_delay", 0)
	v.SetDefault("server.max_multipart_memory", 8<<20)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sample_rate", 1.0)
	v.SetDefault("tracing.service_name", "shoe-design-api")
	v.SetDefault("swagger.enabled", true)
	v.SetDefault("caller.header", "X-User-Id")

	// --- Read Config File (Optional) ---
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix("API") // API_SERVER_PORT, API_LOG_LEVEL, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	// CORS_ALLOWED_ORIGINS (comma-separated) wins over everything else.
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(originsStr)
	}

	return &cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the loaded values before anything is started.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
			errs = append(errs, fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %.2f", c.Tracing.SampleRate))
		}
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path))
	}
	if strings.TrimSpace(c.Caller.Header) == "" {
		errs = append(errs, errors.New("caller.header must not be empty"))
	}

	return errors.Join(errs...)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
