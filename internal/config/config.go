package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, the ops HTTP server, the database, the
// message broker, the external document APIs and the pipeline itself.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP configures the operational HTTP server (metrics, health, pprof)
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
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"verifier" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Kafka configures the broker connection shared by the consumer loop and
	// the response publisher
	Kafka struct {
		// Brokers is the comma-separated list of seed broker addresses
		Brokers []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" yaml:"brokers"`
		// Group is the consumer group id
		Group string `env:"KAFKA_GROUP" env-default:"business_license_group" yaml:"group"`
		// ClientID identifies this process to the cluster
		ClientID string `env:"KAFKA_CLIENT_ID" env-default:"verifier" yaml:"clientId"`
	} `yaml:"kafka"`

	// OCR configures the Document AI text recognition processor
	OCR struct {
		// Endpoint is the regional API base of the recognition engine
		Endpoint string `env:"OCR_ENDPOINT" env-default:"https://documentai.googleapis.com" yaml:"endpoint"`
		// ProjectID is the cloud project hosting the processor
		ProjectID string `env:"OCR_PROJECT_ID" yaml:"projectId"`
		// Location is the processor region, e.g. "us" or "eu"
		Location string `env:"OCR_LOCATION" env-default:"us" yaml:"location"`
		// ProcessorID identifies the document processor resource
		ProcessorID string `env:"OCR_PROCESSOR_ID" yaml:"processorId"`
		// Token is the OAuth bearer token used to authenticate requests
		Token string `env:"OCR_TOKEN" yaml:"token"`
	} `yaml:"ocr"`

	// BizRegistry configures the business registry-of-record validation API
	BizRegistry struct {
		// BaseURL is the API root
		BaseURL string `env:"BIZ_REGISTRY_BASE_URL" env-default:"https://api.odcloud.kr/api/nts-businessman/v1" yaml:"baseUrl"` //nolint: lll
		// ServiceKey authenticates the caller
		ServiceKey string `env:"BIZ_REGISTRY_SERVICE_KEY" yaml:"serviceKey"`
	} `yaml:"bizRegistry"`

	// CertRegistry configures the certificate authority lookup API
	CertRegistry struct {
		// BaseURL is the API root
		BaseURL string `env:"CERT_REGISTRY_BASE_URL" yaml:"baseUrl"`
		// ServiceKey authenticates the caller
		ServiceKey string `env:"CERT_REGISTRY_SERVICE_KEY" yaml:"serviceKey"`
	} `yaml:"certRegistry"`

	// Consumer configures the inbound message loop
	Consumer struct {
		// MessageTimeout bounds the handling of one message end to end
		MessageTimeout time.Duration `env:"CONSUMER_MESSAGE_TIMEOUT" env-default:"2m" yaml:"messageTimeout"`
	} `yaml:"consumer"`

	// Verifier configures retry behavior for transient pipeline failures
	Verifier struct {
		// MaxAttempts is the maximum number of attempts the background worker
		// makes before answering with the internal-error response
		MaxAttempts int `env:"VERIFIER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RetryUniquePeriod is the window during which an identical request is
		// deduplicated in the retry queue
		RetryUniquePeriod time.Duration `env:"VERIFIER_RETRY_UNIQUE_PERIOD" env-default:"1h" yaml:"retryUniquePeriod"`
		// QueueWorkers is the number of concurrent retry workers
		QueueWorkers int `env:"VERIFIER_QUEUE_WORKERS" env-default:"4" yaml:"queueWorkers"`
	} `yaml:"verifier"`

	// GracefulShutdownTimeout is the maximum duration to wait for the in-flight message during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
