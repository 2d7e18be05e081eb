package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AGENT_MODEL_PROVIDER", "dummy")
	t.Setenv("OPENWEATHER_API_KEY", "")
}

func TestLoad_Defaults(t *testing.T) {
	setupEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HistoryWindow != 10 {
		t.Errorf("expected default window 10, got %d", cfg.HistoryWindow)
	}
	if cfg.Temperature != 0.7 || cfg.TopK != 50 || cfg.TopP != 0.95 || cfg.MaxTokens != 200 {
		t.Errorf("unexpected default generation params: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_HISTORY_WINDOW", "5")
	t.Setenv("AGENT_TEMPERATURE", "0.2")
	t.Setenv("AGENT_SPEECH", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HistoryWindow != 5 {
		t.Errorf("expected window 5, got %d", cfg.HistoryWindow)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", cfg.Temperature)
	}
	if !cfg.SpeechEnabled {
		t.Error("expected speech enabled")
	}
}

func TestLoad_YAMLFileAndEnvPrecedence(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	body := "history_window: 7\nsystem_prompt: from-file\nweb_addr: 127.0.0.1:9000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AGENT_SYSTEM_PROMPT", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HistoryWindow != 7 {
		t.Errorf("yaml value not applied: %d", cfg.HistoryWindow)
	}
	if cfg.WebAddr != "127.0.0.1:9000" {
		t.Errorf("yaml value not applied: %s", cfg.WebAddr)
	}
	if cfg.SystemPrompt != "from-env" {
		t.Errorf("env should override yaml, got %q", cfg.SystemPrompt)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	setupEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_MODEL_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENWEATHER_API_KEY", "wk")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected missing OPENAI_API_KEY error")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoad_WeatherKeyRequired(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_MODEL_PROVIDER", "llama")
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected missing OPENWEATHER_API_KEY error")
	}
	if !strings.Contains(err.Error(), "OPENWEATHER_API_KEY") {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoad_UnsupportedProvider(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_MODEL_PROVIDER", "quantum")
	if _, err := Load(""); err == nil {
		t.Fatal("expected unsupported provider error")
	}
}

func TestLoad_MissingModelWeights(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_MODEL_PROVIDER", "llama")
	t.Setenv("OPENWEATHER_API_KEY", "wk")
	t.Setenv("LLAMA_MODEL_PATH", filepath.Join(t.TempDir(), "absent.gguf"))

	_, err := Load("")
	if err == nil {
		t.Fatal("expected missing weights error")
	}
	if !strings.Contains(err.Error(), "model weights") {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoad_InvalidWindow(t *testing.T) {
	setupEnv(t)
	t.Setenv("AGENT_HISTORY_WINDOW", "-1")
	if _, err := Load(""); err == nil {
		t.Fatal("expected invalid window error")
	}
}
