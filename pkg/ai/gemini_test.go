package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "{\"totalScore\": 80}"}]}, "finishReason": "STOP"}
			]
		}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL, "gemini-2.0-flash-001", 5*time.Second)

	got, err := client.GenerateObject(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("GenerateObject() error = %v", err)
	}
	if got != `{"totalScore": 80}` {
		t.Errorf("GenerateObject() = %q", got)
	}
}

func TestGenerateObjectStripsCodeFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "` + "```json\\n{\\\"totalScore\\\": 42}\\n```" + `"}]}}
			]
		}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL, "", 5*time.Second)

	got, err := client.GenerateObject(context.Background(), "", "prompt")
	if err != nil {
		t.Fatalf("GenerateObject() error = %v", err)
	}
	if got != `{"totalScore": 42}` {
		t.Errorf("GenerateObject() = %q", got)
	}
}

func TestGenerateObjectNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL, "", 5*time.Second)

	_, err := client.GenerateObject(context.Background(), "", "prompt")
	if !errors.Is(err, ErrNoObject) {
		t.Fatalf("error = %v, want ErrNoObject", err)
	}
}

func TestGenerateObjectUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL, "", 5*time.Second)

	_, err := client.GenerateObject(context.Background(), "", "prompt")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestGenerateObjectContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL, "", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.GenerateObject(ctx, "", "prompt")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
