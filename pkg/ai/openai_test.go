package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

func TestCompleteWith_Success(t *testing.T) {
	// Mock chat completions server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/v1/chat/completions") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		if req.Temperature != 0.1 || req.MaxTokens != 300 {
			t.Fatalf("sampling parameters not forwarded: %+v", req)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "John Smith|Person"}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	out, err := client.CompleteWith(context.Background(), "extract entities", "transcript", 0.1, 300)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if out != "John Smith|Person" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestCompleteWith_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.CompleteWith(context.Background(), "sys", "body", 0.3, 700); err == nil {
		t.Fatalf("expected error on 429 response")
	}
}

func TestCompleteWith_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.CompleteWith(context.Background(), "sys", "body", 0.3, 700); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}
