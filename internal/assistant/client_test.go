package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestChat_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("authorization = %q, want bearer token", auth)
		}

		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		if req.Model != modelID {
			t.Fatalf("model = %q, want %q", req.Model, modelID)
		}
		if req.Temperature != temperature || req.MaxTokens != maxTokens {
			t.Fatalf("unexpected sampling params: %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Check the chain tension.  "}}]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	text, err := client.Chat(ctx, "system prompt", "user question")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if text != "Check the chain tension." {
		t.Fatalf("text = %q, want trimmed content", text)
	}
}

func TestChat_MissingAPIKey(t *testing.T) {
	client := NewClient("http://localhost", "")

	_, err := client.Chat(context.Background(), "system", "user")
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestChat_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "bad-key")

	_, err := client.Chat(context.Background(), "system", "user")
	if err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("error %q does not carry provider message", err)
	}
}

func TestChat_MalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	if _, err := client.Chat(context.Background(), "system", "user"); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestChat_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	if _, err := client.Chat(context.Background(), "system", "user"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestGenerateArticle_TopicInPrompt(t *testing.T) {
	var gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotUser = req.Messages[1].Content
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"# Article"}}]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	if _, err := client.GenerateArticle(context.Background(), "chain maintenance"); err != nil {
		t.Fatalf("GenerateArticle error: %v", err)
	}
	if !strings.Contains(gotUser, "chain maintenance") {
		t.Fatalf("user prompt %q does not mention the topic", gotUser)
	}
}
