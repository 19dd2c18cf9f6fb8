package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Export sink names.
const (
	SinkNone        = "none"
	SinkGoogleTasks = "google_tasks"
	SinkMemos       = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Planning
	OpenAI   OpenAIConfig
	Planner  PlannerConfig
	Settings SettingsConfig

	// Export
	Export      ExportConfig
	GoogleTasks GoogleTasksConfig
	Memos       MemosConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// OpenAIConfig configures the Responses API client shared by detection and planning.
type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	PlanningModel   string
	DetectionModel  string
	Timeout         time.Duration
	MaxOutputTokens int
	ReasoningEffort string
}

type PlannerConfig struct {
	EnrichmentEnabled bool
	PreferredLanguage string
	MaxAttempts       int
}

type SettingsConfig struct {
	Path       string
	SecretPath string
	Timezone   string
}

type ExportConfig struct {
	Sink              string
	ListCacheTTL      time.Duration
	RequestsPerSecond float64
}

type GoogleTasksConfig struct {
	CredentialsPath string
	TokenPath       string
}

type MemosConfig struct {
	URL         string
	AccessToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/tidy-planner/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/tidy-planner/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.PlanningModel = viper.GetString("openai.planning_model")
	cfg.OpenAI.DetectionModel = viper.GetString("openai.detection_model")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	cfg.OpenAI.MaxOutputTokens = viper.GetInt("openai.max_output_tokens")
	cfg.OpenAI.ReasoningEffort = viper.GetString("openai.reasoning_effort")

	// Planner
	cfg.Planner.EnrichmentEnabled = viper.GetBool("planner.enrichment_enabled")
	cfg.Planner.PreferredLanguage = viper.GetString("planner.preferred_language")
	cfg.Planner.MaxAttempts = viper.GetInt("planner.max_attempts")

	// Settings store
	cfg.Settings.Path = viper.GetString("settings.path")
	cfg.Settings.SecretPath = viper.GetString("settings.secret_path")
	cfg.Settings.Timezone = viper.GetString("settings.timezone")

	// Export
	cfg.Export.Sink = strings.ToLower(viper.GetString("export.sink"))
	cfg.Export.ListCacheTTL = viper.GetDuration("export.list_cache_ttl")
	cfg.Export.RequestsPerSecond = viper.GetFloat64("export.requests_per_second")

	cfg.GoogleTasks.CredentialsPath = viper.GetString("google_tasks.credentials_path")
	cfg.GoogleTasks.TokenPath = viper.GetString("google_tasks.token_path")
	if creds := viper.GetString("google_tasks_credentials"); creds != "" {
		cfg.GoogleTasks.CredentialsPath = creds
	}

	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = expandEnvVar(viper.GetString("memos.access_token"))
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Export.Sink {
	case SinkNone, "":
		c.Export.Sink = SinkNone
	case SinkGoogleTasks:
		if c.GoogleTasks.CredentialsPath == "" {
			return fmt.Errorf("export.sink=%s requires google_tasks.credentials_path", c.Export.Sink)
		}
	case SinkMemos:
		if c.Memos.URL == "" || c.Memos.AccessToken == "" {
			return fmt.Errorf("export.sink=%s requires memos.url and memos.access_token", c.Export.Sink)
		}
	default:
		return fmt.Errorf("unknown export.sink %q", c.Export.Sink)
	}
	if c.Planner.MaxAttempts < 1 {
		return fmt.Errorf("planner.max_attempts must be at least 1")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	// OpenAI defaults
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.planning_model", "gpt-5-mini")
	viper.SetDefault("openai.detection_model", "gpt-5-mini")
	viper.SetDefault("openai.timeout", "30s")
	viper.SetDefault("openai.max_output_tokens", 4000)
	viper.SetDefault("openai.reasoning_effort", "low")

	viper.SetDefault("planner.enrichment_enabled", true)
	viper.SetDefault("planner.max_attempts", 3)

	viper.SetDefault("settings.path", "data/settings.json")
	viper.SetDefault("settings.secret_path", "data/secrets.json")
	viper.SetDefault("settings.timezone", "UTC")

	viper.SetDefault("export.sink", SinkNone)
	viper.SetDefault("export.list_cache_ttl", "30m")
	viper.SetDefault("export.requests_per_second", 5)
	viper.SetDefault("google_tasks.token_path", "token.json")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
