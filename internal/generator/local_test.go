package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func chatCompletionResponse(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestLocalGenerator_ReturnsArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["model"] != "llama3" {
			t.Errorf("expected model llama3, got %v", payload["model"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionResponse("Title: Pines\n\nIntroduction:\nPines are trees.")))
	}))
	defer srv.Close()

	g, err := NewLocalGenerator(srv.URL, "llama3", 5*time.Second, 0.2, 1024)
	if err != nil {
		t.Fatalf("new local generator: %v", err)
	}
	article, err := g.Generate(context.Background(), "pine trees")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(article, "Pines are trees.") {
		t.Errorf("unexpected article: %s", article)
	}
}

func TestLocalGenerator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g, _ := NewLocalGenerator(srv.URL, "llama3", 5*time.Second, 0, 0)
	if _, err := g.Generate(context.Background(), "anything"); err == nil {
		t.Errorf("expected error for 500 response")
	}
}

func TestLocalGenerator_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatCompletionResponse("   ")))
	}))
	defer srv.Close()

	g, _ := NewLocalGenerator(srv.URL, "llama3", 5*time.Second, 0, 0)
	_, err := g.Generate(context.Background(), "anything")
	if !errors.Is(err, ErrEmptyArticle) {
		t.Errorf("expected ErrEmptyArticle, got %v", err)
	}
}

func TestLocalGenerator_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read can observe the
		// client disconnect and cancel the request context.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	g, _ := NewLocalGenerator(srv.URL, "llama3", time.Minute, 0, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := g.Generate(ctx, "anything"); err == nil {
		t.Errorf("expected error after context cancellation")
	}
}

func TestNewLocalGenerator_RequiresBaseURL(t *testing.T) {
	if _, err := NewLocalGenerator("", "llama3", 0, 0, 0); err == nil {
		t.Errorf("expected error for missing base url")
	}
}
