package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// MaxExpirationBatchSize is the largest number of cart IDs a single
// expiration job may carry.
const MaxExpirationBatchSize = 50

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, cart sharing, shared cart expiration and graceful shutdown
// behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// PprofPath is where runtime profiles are served, empty disables them
		PprofPath string `env:"HTTP_PPROF_PATH" env-default:"/debug/pprof" yaml:"pprofPath"`
		// AllowedOrigins lists the origins allowed by CORS, "*" allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"sharecart" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ApplicationName is reported to the server and visible in pg_stat_activity
		ApplicationName string `env:"DATABASE_APPLICATION_NAME" env-default:"sharecart" yaml:"applicationName"`
	} `yaml:"database"`

	// JWT holds the RSA key pair used for bearer authentication
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to issue tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Sharing configures signed shared cart links
	Sharing struct {
		// Secret is the HMAC key of sharing tokens. Rotating it invalidates every outstanding link.
		Secret string `env:"SHARING_SECRET" env-required:"true" yaml:"secret"`
		// BaseURL is prepended to link paths to build absolute URLs
		BaseURL string `env:"SHARING_BASE_URL" env-default:"http://localhost:8080" yaml:"baseURL"`
	} `yaml:"sharing"`

	// Expiration configures discovery and deletion of stale shared carts
	Expiration struct {
		// ScanInterval is the period of the scan job
		ScanInterval time.Duration `env:"EXPIRATION_SCAN_INTERVAL" env-default:"30m" yaml:"scanInterval"`
		// CandidateLimit caps the number of carts collected per order type and scan
		CandidateLimit uint `env:"EXPIRATION_CANDIDATE_LIMIT" env-default:"250" yaml:"candidateLimit"`
		// BatchSize is the maximum number of carts in a single deletion job
		BatchSize int `env:"EXPIRATION_BATCH_SIZE" env-default:"50" yaml:"batchSize"`
		// MaxAttempts is how many times a failing job is retried by the queue
		MaxAttempts int `env:"EXPIRATION_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Workers is the number of jobs processed concurrently
		Workers int `env:"EXPIRATION_WORKERS" env-default:"10" yaml:"workers"`
	} `yaml:"expiration"`

	// Tracing configures span export
	Tracing struct {
		// Enabled installs the SDK tracer provider. Spans are dropped when false.
		Enabled bool `env:"OTEL_ENABLED" env-default:"false" yaml:"enabled"`
		// Endpoint is the OTLP/HTTP collector address. Spans go to stdout when empty.
		Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"endpoint"`
		// Insecure disables TLS towards the collector
		Insecure bool `env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"false" yaml:"insecure"`
		// SampleRatio is the fraction of root spans recorded
		SampleRatio float64 `env:"OTEL_SAMPLER_RATIO" env-default:"0.1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	var errs []error
	if c.Sharing.Secret == "" {
		errs = append(errs, errors.New("sharing.secret must not be empty"))
	}
	if c.Expiration.ScanInterval <= 0 {
		errs = append(errs, errors.New("expiration.scanInterval must be positive"))
	}
	if c.Expiration.CandidateLimit == 0 {
		errs = append(errs, errors.New("expiration.candidateLimit must be positive"))
	}
	if c.Expiration.BatchSize <= 0 || c.Expiration.BatchSize > MaxExpirationBatchSize {
		errs = append(errs, fmt.Errorf("expiration.batchSize must be between 1 and %d", MaxExpirationBatchSize))
	}
	if c.Expiration.MaxAttempts <= 0 {
		errs = append(errs, errors.New("expiration.maxAttempts must be positive"))
	}
	if c.Expiration.Workers <= 0 {
		errs = append(errs, errors.New("expiration.workers must be positive"))
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("tracing.sampleRatio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
