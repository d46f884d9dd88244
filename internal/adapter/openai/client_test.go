package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pawfuel/internal/config/configs"
	"pawfuel/internal/core/port"
)

func testClient(srv *httptest.Server) *Client {
	return NewClient(configs.OpenAI{BaseURL: srv.URL, Model: "gpt-3.5-turbo", Timeout: 5 * time.Second})
}

func TestGenerateExtractsContent(t *testing.T) {
	var captured struct {
		path   string
		auth   string
		body   map[string]any
		method string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.method = r.Method
		if err := json.NewDecoder(r.Body).Decode(&captured.body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  A cozy mug for slow mornings.  "}}]}`))
	}))
	defer srv.Close()

	text, err := testClient(srv).Generate(context.Background(), port.GenerateRequest{
		Prompt:      "Describe a mug.",
		APIKey:      "sk-test",
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "A cozy mug for slow mornings." {
		t.Fatalf("content not trimmed: %q", text)
	}

	if captured.method != http.MethodPost || captured.path != "/v1/chat/completions" {
		t.Fatalf("unexpected request: %s %s", captured.method, captured.path)
	}
	if captured.auth != "Bearer sk-test" {
		t.Fatalf("unexpected authorization header: %q", captured.auth)
	}
	if captured.body["model"] != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %v", captured.body["model"])
	}
	if captured.body["max_tokens"] != float64(100) || captured.body["temperature"] != 0.7 {
		t.Fatalf("unexpected sampling params: %v / %v", captured.body["max_tokens"], captured.body["temperature"])
	}
	messages, ok := captured.body["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("unexpected messages: %v", captured.body["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "Describe a mug." {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Generate(context.Background(), port.GenerateRequest{Prompt: "hi", APIKey: "sk-test"})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error should carry status and body: %v", err)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Generate(context.Background(), port.GenerateRequest{Prompt: "hi", APIKey: "sk-test"})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("expected no-choices error, got %v", err)
	}
}
