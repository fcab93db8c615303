// Package llm collects puzzle answers from chat-completion style models.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/util"
)

// ErrEmptyAnswer is returned when a provider responds without any content
var ErrEmptyAnswer = errors.New("empty answer from model")

// SystemPrompt frames every puzzle for the model
const SystemPrompt = "Je lost Nederlandse raadsels op. Elk raadsel noemt drie betekenissen van " +
	"hetzelfde woord. Antwoord uitsluitend met dat ene woord."

// Provider answers puzzle prompts
type Provider interface {
	// Name returns the provider name
	Name() string

	// Answer sends one prompt and returns the raw model output
	Answer(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings
type Config struct {
	Provider  string // "openai", "anthropic" or "ollama"
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
	Proxy     util.ProxySettings
}

// ConfigFromModel maps the llm section of the configuration, sharing the wiki proxy settings
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
		Proxy: util.ProxySettings{
			HTTPProxy:  cfg.Wiki.HTTPProxy,
			HTTPSProxy: cfg.Wiki.HTTPSProxy,
			NoProxy:    cfg.Wiki.NoProxy,
		},
	}
}

func (c Config) timeout(fallback time.Duration) time.Duration {
	if c.Timeout <= 0 {
		return fallback
	}
	return time.Duration(c.Timeout) * time.Second
}

func (c Config) maxTokens() int {
	if c.MaxTokens <= 0 {
		return 100
	}
	return c.MaxTokens
}
