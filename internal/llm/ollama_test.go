package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Answer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Decode request: %v", err)
		}
		if req.Stream {
			t.Error("Expected non-streaming request")
		}
		if req.Model != "llama3.1:8b" || req.Options.NumPredict != 20 {
			t.Errorf("Unexpected request: %+v", req)
		}

		_, _ = w.Write([]byte(`{"model": "llama3.1:8b", "response": "Kraan\n", "done": true}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL + "/", Model: "llama3.1:8b", MaxTokens: 20})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	answer, err := provider.Answer(context.Background(), "raadsel")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer != "Kraan" {
		t.Errorf("Expected answer Kraan, got %q", answer)
	}
}

func TestOllamaProvider_Answer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing"})
	if _, err := provider.Answer(context.Background(), "raadsel"); err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestNewOllamaProvider_NoModel(t *testing.T) {
	if _, err := NewOllamaProvider(Config{}); err == nil {
		t.Error("Expected error without model")
	}
}
