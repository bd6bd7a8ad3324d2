package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat specifics
	Inference  InferenceConfig
	Generation GenerationConfig
	History    HistoryConfig
	Session    SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InferenceConfig describes the text-generation endpoint.
type InferenceConfig struct {
	URL               string
	APIToken          string
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// GenerationConfig holds sampling parameters and the loop/retry bounds.
type GenerationConfig struct {
	MaxTokens         int
	ContextWindow     int
	MinResponseTokens int
	Temperature       float64
	TopP              float64
	Stop              []string
	MaxLoops          int
	MaxRetries        int
	RetryBaseDelay    time.Duration
	RetryMaxDelay     time.Duration
}

// HistoryConfig controls the in-memory session history store and the prompt window.
type HistoryConfig struct {
	WindowSize            int
	Capacity              int
	TTL                   time.Duration
	IncludeAssistantTurns bool
}

type SessionConfig struct {
	CookieName   string
	CookieMaxAge int
	Secure       bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Flags in fs (if any) override file and environment values.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
		if path := v.GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Inference endpoint
	cfg.Inference.URL = v.GetString("inference.url")
	cfg.Inference.Model = v.GetString("inference.model")
	cfg.Inference.APIToken = expandEnvVar(v, v.GetString("inference.api_token"))
	if token := v.GetString("huggingface_api_token"); token != "" && cfg.Inference.APIToken == "" {
		cfg.Inference.APIToken = token
	}
	cfg.Inference.Timeout = v.GetDuration("inference.timeout")
	cfg.Inference.RequestsPerSecond = v.GetFloat64("inference.requests_per_second")
	cfg.Inference.Burst = v.GetInt("inference.burst")

	// Generation
	cfg.Generation.MaxTokens = v.GetInt("generation.max_tokens")
	cfg.Generation.ContextWindow = v.GetInt("generation.context_window")
	cfg.Generation.MinResponseTokens = v.GetInt("generation.min_response_tokens")
	cfg.Generation.Temperature = v.GetFloat64("generation.temperature")
	cfg.Generation.TopP = v.GetFloat64("generation.top_p")
	cfg.Generation.Stop = v.GetStringSlice("generation.stop")
	cfg.Generation.MaxLoops = v.GetInt("generation.max_loops")
	cfg.Generation.MaxRetries = v.GetInt("generation.max_retries")
	cfg.Generation.RetryBaseDelay = v.GetDuration("generation.retry_base_delay")
	cfg.Generation.RetryMaxDelay = v.GetDuration("generation.retry_max_delay")

	// History
	cfg.History.WindowSize = v.GetInt("history.window_size")
	cfg.History.Capacity = v.GetInt("history.capacity")
	cfg.History.TTL = v.GetDuration("history.ttl")
	cfg.History.IncludeAssistantTurns = v.GetBool("history.include_assistant_turns")

	// Session cookie
	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.CookieMaxAge = v.GetInt("session.cookie_max_age")
	cfg.Session.Secure = v.GetBool("session.secure")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Inference defaults
	v.SetDefault("inference.url", "https://api-inference.huggingface.co/models/Qwen/Qwen2.5-Coder-32B-Instruct")
	v.SetDefault("inference.model", "Qwen/Qwen2.5-Coder-32B-Instruct")
	v.SetDefault("inference.api_token", "${HUGGINGFACE_API_TOKEN}")
	v.SetDefault("inference.timeout", "30s")
	v.SetDefault("inference.requests_per_second", 0)
	v.SetDefault("inference.burst", 1)

	// Generation defaults
	v.SetDefault("generation.max_tokens", 0)
	v.SetDefault("generation.context_window", 4096)
	v.SetDefault("generation.min_response_tokens", 512)
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.top_p", 0.9)
	v.SetDefault("generation.stop", []string{"\nAssistant:"})
	v.SetDefault("generation.max_loops", 10)
	v.SetDefault("generation.max_retries", 5)
	v.SetDefault("generation.retry_base_delay", "1s")
	v.SetDefault("generation.retry_max_delay", "30s")

	// History defaults
	v.SetDefault("history.window_size", 10)
	v.SetDefault("history.capacity", 10000)
	v.SetDefault("history.ttl", "24h")
	v.SetDefault("history.include_assistant_turns", true)

	v.SetDefault("session.cookie_name", "session_id")
	v.SetDefault("session.cookie_max_age", 86400)
	v.SetDefault("session.secure", false)
}

// bindFlags maps command-line flags onto config keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"config":              "config",
		"port":                "http_server.port",
		"mode":                "http_server.mode",
		"log-level":           "logger.level",
		"inference-url":       "inference.url",
		"history-window-size": "history.window_size",
	}
	for flag, key := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validate validates the loaded configuration
func validate(cfg *Config) error {
	if cfg.Inference.URL == "" {
		return fmt.Errorf("inference.url is required")
	}
	if cfg.Inference.APIToken == "" {
		return fmt.Errorf("inference.api_token is required - set HUGGINGFACE_API_TOKEN or inference.api_token in config.yaml")
	}
	if cfg.Inference.RequestsPerSecond < 0 {
		return fmt.Errorf("inference.requests_per_second must not be negative")
	}
	if cfg.Generation.MaxLoops <= 0 {
		return fmt.Errorf("generation.max_loops must be positive")
	}
	if cfg.Generation.MaxRetries <= 0 {
		return fmt.Errorf("generation.max_retries must be positive")
	}
	if cfg.Generation.Temperature < 0 {
		return fmt.Errorf("generation.temperature must not be negative")
	}
	if cfg.Generation.TopP <= 0 || cfg.Generation.TopP > 1 {
		return fmt.Errorf("generation.top_p must be in (0, 1]")
	}
	if cfg.History.WindowSize < 0 {
		return fmt.Errorf("history.window_size must not be negative")
	}
	if cfg.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive")
	}
	return nil
}
