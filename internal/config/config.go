package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		// Mode selects the authenticator: "mock" injects a fixed principal,
		// "token" verifies bearer JWTs.
		Mode          string `yaml:"mode"`
		Secret        string `yaml:"secret"`
		TTL           int    `yaml:"ttl"` // minutes
		MockUserID    string `yaml:"mock_user_id"`
		MockUserEmail string `yaml:"mock_user_email"`
		MockUserRole  string `yaml:"mock_user_role"`
	} `yaml:"auth"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config entirely from
// environment variables when DATABASE_URL is set (tests, containers).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.Mode = os.Getenv("AUTH_MODE")
	cfg.Auth.Secret = os.Getenv("AUTH_SECRET")
	cfg.Auth.TTL = 60

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Auth.Mode == "" {
		cfg.Auth.Mode = "mock"
	}
	if cfg.Auth.TTL == 0 {
		cfg.Auth.TTL = 60
	}
	// The identity the mock authenticator injects when none is configured.
	if cfg.Auth.MockUserID == "" {
		cfg.Auth.MockUserID = "673b094d-a261-47dc-b066-20df99d14337"
	}
	if cfg.Auth.MockUserEmail == "" {
		cfg.Auth.MockUserEmail = "john@email.com"
	}
	if cfg.Auth.MockUserRole == "" {
		cfg.Auth.MockUserRole = "WORKER"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
