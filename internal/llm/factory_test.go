package llm

import (
	"testing"

	"github.com/ppiankov/raadsel/internal/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"openai", "openai", false},
		{"OpenAI", "openai", false},
		{"claude", "anthropic", false},
		{"ollama", "ollama", false},
		{"", "", true},
		{"gemini", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			p, err := NewProvider(Config{Provider: tt.provider, APIKey: "k", Model: "m"})
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider failed: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Expected provider %s, got %s", tt.wantName, p.Name())
			}
		})
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.LLM.APIKey = "secret"
	cfg.Wiki.HTTPSProxy = "http://proxy:3128"

	c := ConfigFromModel(cfg)
	if c.Provider != "openai" || c.Model != "gpt-4o" || c.APIKey != "secret" {
		t.Errorf("Unexpected LLM config: %+v", c)
	}
	if c.Proxy.HTTPSProxy != "http://proxy:3128" {
		t.Errorf("Expected proxy settings to be shared, got %+v", c.Proxy)
	}
	if c.maxTokens() != 100 {
		t.Errorf("Expected max tokens 100, got %d", c.maxTokens())
	}
}
