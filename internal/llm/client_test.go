package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPClientGenerate(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "답변 텍스트"}},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "key-123", "test-model", 700, nil)
	got, err := client.Generate(context.Background(), "지시문", "질문 프롬프트")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "답변 텍스트" {
		t.Fatalf("unexpected answer: %q", got)
	}
	if gotAuth != "Bearer key-123" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotBody.Model != "test-model" || gotBody.MaxTokens != 700 {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
}

func TestHTTPClientGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "key", "m", 0, nil)
	_, err := client.Generate(context.Background(), "i", "p")
	if err == nil || !strings.Contains(err.Error(), "status=429") {
		t.Fatalf("expected http error, got %v", err)
	}
}

func TestHTTPClientGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "key", "m", 0, nil)
	_, err := client.Generate(context.Background(), "i", "p")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}
