package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"xcfeed/internal/domain"
)

const (
	DefaultPath      = "config.yml"
	DefaultCachePath = "pilotIDs.cache.yml"
)

type Config struct {
	Key       string         `yaml:"key"`
	URL       string         `yaml:"url"`
	Users     []string       `yaml:"users"`
	CachePath string         `yaml:"cache_path"`
	API       APIConfig      `yaml:"api"`
	Database  DatabaseConfig `yaml:"database"`
	RabbitMQ  RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel  string         `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// Year selects the flights season. Zero means the current UTC year.
	Year int `yaml:"year"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether flights should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// Enabled reports whether flights should be archived.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// required mirrors the mandatory keys so that absence can be told apart from zero values.
type required struct {
	Key   *string   `yaml:"key"`
	URL   *string   `yaml:"url"`
	Users *[]string `yaml:"users"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrConfigUnreadable, path, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var req required
	if err := yaml.Unmarshal(expanded, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigMalformed, err)
	}
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigMalformed, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigMalformed, err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (r required) validate() error {
	var errs []error
	if r.Key == nil || *r.Key == "" {
		errs = append(errs, errors.New("field key is required"))
	}
	if r.URL == nil || *r.URL == "" {
		errs = append(errs, errors.New("field url is required"))
	}
	if r.Users == nil {
		errs = append(errs, errors.New("field users is required"))
	}
	return errors.Join(errs...)
}

func (c *Config) setDefaults() {
	if c.Users == nil {
		c.Users = []string{}
	}
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://www.xcontest.org"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.Year == 0 {
		c.API.Year = time.Now().UTC().Year()
	}
	if c.RabbitMQ.Enabled() {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "xcfeed"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "flights"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "xcfeed_flights"
		}
	}
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
