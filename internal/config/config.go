package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string `mapstructure:"APP_ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LogFile    string `mapstructure:"LOG_FILE"`
	ServerPort string `mapstructure:"SERVER_PORT"`

	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	PostgresDSN    string `mapstructure:"POSTGRES_DSN"`
	RecordsFile    string `mapstructure:"RECORDS_FILE"`
	ActivitiesFile string `mapstructure:"ACTIVITIES_FILE"`
	ProfilesFile   string `mapstructure:"PROFILES_FILE"`

	AuthMode       string `mapstructure:"AUTH_MODE"`
	AuthToken      string `mapstructure:"AUTH_TOKEN"`
	AuthUserID     string `mapstructure:"AUTH_USER_ID"`
	AuthServiceURL string `mapstructure:"AUTH_SERVICE_URL"`

	ReflectionProvider string `mapstructure:"REFLECTION_PROVIDER"`
	ReflectionAPIKey   string `mapstructure:"REFLECTION_API_KEY"`
	ReflectionEndpoint string `mapstructure:"REFLECTION_ENDPOINT"`
	ReflectionModel    string `mapstructure:"REFLECTION_MODEL"`
}

var defaults = map[string]interface{}{
	"APP_ENV":             "development",
	"LOG_LEVEL":           "info",
	"LOG_FILE":            "",
	"SERVER_PORT":         "8088",
	"STORAGE_BACKEND":     "file",
	"POSTGRES_DSN":        "",
	"RECORDS_FILE":        "data/records.json",
	"ACTIVITIES_FILE":     "data/activities.json",
	"PROFILES_FILE":       "data/profiles.json",
	"AUTH_MODE":           "local",
	"AUTH_TOKEN":          "MOCK-TOKEN",
	"AUTH_USER_ID":        "u1",
	"AUTH_SERVICE_URL":    "",
	"REFLECTION_PROVIDER": "langchain",
	"REFLECTION_API_KEY":  "",
	"REFLECTION_ENDPOINT": "https://api.siliconflow.cn/v1",
	"REFLECTION_MODEL":    "Qwen/Qwen2.5-7B-Instruct",
}

// Load reads path/.env when present, then lets the environment override it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.StorageBackend {
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "file":
		if c.RecordsFile == "" || c.ActivitiesFile == "" || c.ProfilesFile == "" {
			return errors.New("file storage requires RECORDS_FILE, ACTIVITIES_FILE and PROFILES_FILE to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, postgres")
	}
	switch c.AuthMode {
	case "local":
		if c.AuthToken == "" {
			return errors.New("AUTH_TOKEN is required when AUTH_MODE=local")
		}
	case "remote":
		if c.AuthServiceURL == "" {
			return errors.New("AUTH_SERVICE_URL is required when AUTH_MODE=remote")
		}
	default:
		return errors.New("AUTH_MODE must be one of: local, remote")
	}
	switch c.ReflectionProvider {
	case "langchain", "openai", "none":
	default:
		return errors.New("REFLECTION_PROVIDER must be one of: langchain, openai, none")
	}
	return nil
}
