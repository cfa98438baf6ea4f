package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the binary needs to start. Infrastructure
// endpoints come from the YAML-style config file; secrets come from the
// environment (.env is loaded when present).
type Config struct {
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Forecast ForecastConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  int // minutes
}

type ForecastConfig struct {
	OracleURL string
	APIKey    string
	TimeoutS  int
}

func Load(path string) (*Config, error) {
	// .env is optional; a missing file just means the environment is already set.
	_ = godotenv.Load()

	cfg := &Config{
		HTTP:     HTTPConfig{Port: 8080},
		Auth:     AuthConfig{TokenTTL: 480},
		Forecast: ForecastConfig{TimeoutS: 30},
	}

	if err := readFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	cfg.Forecast.OracleURL = os.Getenv("FORECAST_ORACLE_URL")
	cfg.Forecast.APIKey = os.Getenv("FORECAST_API_KEY")

	return cfg, nil
}

// readFile parses the simple two-level "section: / key: value" config format.
func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var section string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") {
			section = strings.TrimSuffix(line, ":")
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch section {
		case "database":
			switch key {
			case "host":
				cfg.Database.Host = value
			case "port":
				cfg.Database.Port, _ = strconv.Atoi(value)
			case "user":
				cfg.Database.User = value
			case "password":
				cfg.Database.Password = value
			case "database":
				cfg.Database.Database = value
			}
		case "rabbitmq":
			switch key {
			case "host":
				cfg.RabbitMQ.Host = value
			case "port":
				cfg.RabbitMQ.Port, _ = strconv.Atoi(value)
			case "user":
				cfg.RabbitMQ.User = value
			case "password":
				cfg.RabbitMQ.Password = value
			case "vhost":
				cfg.RabbitMQ.VHost = value
			}
		case "http":
			switch key {
			case "port":
				cfg.HTTP.Port, _ = strconv.Atoi(value)
			case "allowed_origins":
				for _, o := range strings.Split(value, ",") {
					if o = strings.TrimSpace(o); o != "" {
						cfg.HTTP.AllowedOrigins = append(cfg.HTTP.AllowedOrigins, o)
					}
				}
			}
		case "auth":
			if key == "token_ttl_minutes" {
				cfg.Auth.TokenTTL, _ = strconv.Atoi(value)
			}
		case "forecast":
			if key == "timeout_seconds" {
				cfg.Forecast.TimeoutS, _ = strconv.Atoi(value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
