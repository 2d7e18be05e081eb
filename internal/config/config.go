package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all agent settings. Values come from defaults, then an
// optional YAML file, then environment variables (highest precedence).
type Config struct {
	ModelProvider string `yaml:"model_provider"`

	LlamaServerURL string `yaml:"llama_server_url"`
	LlamaModelPath string `yaml:"llama_model_path"`

	OpenAIAPIKey      string `yaml:"openai_api_key"`
	OpenAIChatCompURL string `yaml:"openai_chat_completions_url"`
	OpenAIModel       string `yaml:"openai_model"`

	WeatherAPIKey  string `yaml:"weather_api_key"`
	WeatherAPIBase string `yaml:"weather_api_base"`

	HistoryWindow int    `yaml:"history_window"`
	HistoryDBPath string `yaml:"history_db"`
	SystemPrompt  string `yaml:"system_prompt"`

	Temperature float32 `yaml:"temperature"`
	TopK        int     `yaml:"top_k"`
	TopP        float32 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"`

	SpeechEnabled bool   `yaml:"speech_enabled"`
	SpeakCommand  string `yaml:"speak_command"`
	ListenCommand string `yaml:"listen_command"`

	WebAddr string `yaml:"web_addr"`

	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	DummyScript string `yaml:"dummy_script"`
}

func defaults() Config {
	return Config{
		ModelProvider:         "llama",
		LlamaServerURL:        "http://127.0.0.1:8080",
		OpenAIChatCompURL:     "https://api.openai.com/v1/chat/completions",
		OpenAIModel:           "gpt-4o-mini",
		WeatherAPIBase:        "https://api.openweathermap.org",
		HistoryWindow:         10,
		SystemPrompt:          "You are a helpful local assistant. Answer concisely.",
		Temperature:           0.7,
		TopK:                  50,
		TopP:                  0.95,
		MaxTokens:             200,
		SpeakCommand:          "espeak --stdin",
		ListenCommand:         "agent-listen",
		WebAddr:               "127.0.0.1:8741",
		RequestTimeoutSeconds: 120,
	}
}

// Load builds the configuration. filePath may be empty; when set, the YAML
// file must exist and parse.
func Load(filePath string) (Config, error) {
	cfg := defaults()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", filePath, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.ModelProvider = envOrDefault("AGENT_MODEL_PROVIDER", cfg.ModelProvider)
	cfg.LlamaServerURL = envOrDefault("LLAMA_SERVER_URL", cfg.LlamaServerURL)
	cfg.LlamaModelPath = envOrDefault("LLAMA_MODEL_PATH", cfg.LlamaModelPath)
	cfg.OpenAIAPIKey = envOrDefault("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIChatCompURL = envOrDefault("OPENAI_CHAT_COMPLETIONS_URL", cfg.OpenAIChatCompURL)
	cfg.OpenAIModel = envOrDefault("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.WeatherAPIKey = envOrDefault("OPENWEATHER_API_KEY", cfg.WeatherAPIKey)
	cfg.WeatherAPIBase = envOrDefault("OPENWEATHER_API_BASE", cfg.WeatherAPIBase)
	cfg.HistoryWindow = envIntOrDefault("AGENT_HISTORY_WINDOW", cfg.HistoryWindow)
	cfg.HistoryDBPath = envOrDefault("AGENT_HISTORY_DB", cfg.HistoryDBPath)
	cfg.SystemPrompt = envOrDefault("AGENT_SYSTEM_PROMPT", cfg.SystemPrompt)
	cfg.Temperature = envFloatOrDefault("AGENT_TEMPERATURE", cfg.Temperature)
	cfg.TopK = envIntOrDefault("AGENT_TOP_K", cfg.TopK)
	cfg.TopP = envFloatOrDefault("AGENT_TOP_P", cfg.TopP)
	cfg.MaxTokens = envIntOrDefault("AGENT_MAX_TOKENS", cfg.MaxTokens)
	cfg.SpeechEnabled = envBoolOrDefault("AGENT_SPEECH", cfg.SpeechEnabled)
	cfg.SpeakCommand = envOrDefault("AGENT_SPEAK_COMMAND", cfg.SpeakCommand)
	cfg.ListenCommand = envOrDefault("AGENT_LISTEN_COMMAND", cfg.ListenCommand)
	cfg.WebAddr = envOrDefault("AGENT_WEB_ADDR", cfg.WebAddr)
	cfg.RequestTimeoutSeconds = envIntOrDefault("AGENT_REQUEST_TIMEOUT_SECONDS", cfg.RequestTimeoutSeconds)
	cfg.DummyScript = envOrDefault("AGENT_DUMMY_SCRIPT", cfg.DummyScript)
}

func (c Config) validate() error {
	switch c.ModelProvider {
	case "llama":
		if c.LlamaServerURL == "" {
			return fmt.Errorf("LLAMA_SERVER_URL is required when AGENT_MODEL_PROVIDER=llama")
		}
		if c.LlamaModelPath != "" {
			if _, err := os.Stat(c.LlamaModelPath); err != nil {
				return fmt.Errorf("model weights not found at LLAMA_MODEL_PATH=%s: %w", c.LlamaModelPath, err)
			}
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AGENT_MODEL_PROVIDER=openai")
		}
	case "dummy":
		// No credentials needed.
	default:
		return fmt.Errorf("unsupported model provider: %s", c.ModelProvider)
	}

	if c.WeatherAPIKey == "" && c.ModelProvider != "dummy" {
		return fmt.Errorf("OPENWEATHER_API_KEY is required in environment")
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("AGENT_HISTORY_WINDOW must be > 0")
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("AGENT_REQUEST_TIMEOUT_SECONDS must be > 0")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloatOrDefault(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

func envBoolOrDefault(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "1" || strings.EqualFold(v, "true")
}
