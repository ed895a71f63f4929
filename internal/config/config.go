package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App    `yaml:"app"`
		Log    `yaml:"log"`
		Source `yaml:"source"`
		HTTP   `yaml:"http"`
		GRPC   `yaml:"grpc"`
		Kafka  `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"loganalyzer"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
		Mode    string `yaml:"mode" env:"APP_MODE" env-default:"report"`

		// PrintData dumps every parsed entry before the report.
		PrintData bool `yaml:"print_data" env:"APP_PRINT_DATA" env-default:"false"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	Source struct {
		Path   string `env-required:"true" yaml:"path" env:"SOURCE_PATH"`
		Format string `yaml:"format" env:"SOURCE_FORMAT" env-default:"weblog"`
		Strict bool   `yaml:"strict" env:"SOURCE_STRICT" env-default:"false"`
	}

	HTTP struct {
		Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	GRPC struct {
		Port            string        `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"GRPC_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"access-stats"`
	}
)

const (
	ModeReport = "report"
	ModeServe  = "serve"
)

const (
	ENV_PATH    = "infra/.env.dev"
	CONFIG_PATH = "infra/config.yaml"
)

var (
	ErrInvalidMode   = errors.New("invalid app mode")
	ErrNoKafkaBroker = errors.New("kafka is enabled but no brokers are set")
)

// New reads the yaml config (APP_CONFIG_PATH, default infra/config.yaml)
// and lets environment variables override it. Without a config file only
// the environment is used.
func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debug("No .env file loaded")
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Debug("Config path is not set, using default")
		pathToConfig = CONFIG_PATH
	}

	if _, err := os.Stat(pathToConfig); err == nil {
		if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.App.Mode {
	case ModeReport, ModeServe:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.App.Mode)
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return ErrNoKafkaBroker
	}

	return nil
}
