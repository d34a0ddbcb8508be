package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/zenlog/internal/store"
)

func TestGenerateOutlineEndpoint(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	reply := `{"candidates":[{"content":{"parts":[{"text":"# Outline\n\n1. Intro"}]}}]}`
	r, cleanup := newTestRouter(t, cs, reply)
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/outline", `{"topic":"Slow mornings"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Outline string `json:"outline"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Outline, "# Outline") {
		t.Fatalf("unexpected outline: %q", resp.Outline)
	}
}

func TestGenerateOutlineRejectsBlankTopic(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	r, cleanup := newTestRouter(t, cs, "")
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/outline", `{"topic":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateOutlineReportsUpstreamFailure(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	r, cleanup := newTestRouter(t, cs, "")
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/outline", `{"topic":"Slow mornings"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestSummarizeContentFallsBack(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	r, cleanup := newTestRouter(t, cs, "")
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/summary", `{"content":"A short body"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Summary  string `json:"summary"`
		Fallback bool   `json:"fallback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Fallback || resp.Summary != "A short body..." {
		t.Fatalf("expected truncation fallback, got %+v", resp)
	}
}

func TestAnalyzeMoodEndpoint(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	r, cleanup := newTestRouter(t, cs, moodReply)
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/mood", `{"text":"Sunrise"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Mood string `json:"mood"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Mood != "🌅" {
		t.Fatalf("expected analyzed mood, got %q", resp.Mood)
	}
}

func TestGenerateCoverEndpoint(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	reply := `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"QUJD"}}]}}]}`
	r, cleanup := newTestRouter(t, cs, reply)
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/cover", `{"title":"Kyoto","content":"Cafes"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		CoverImage string `json:"coverImage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CoverImage != "data:image/png;base64,QUJD" {
		t.Fatalf("unexpected cover image: %q", resp.CoverImage)
	}
}

func TestGenerateCoverReturnsEmptyOnFailure(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	r, cleanup := newTestRouter(t, cs, "")
	defer cleanup()

	w := performJSON(t, r, http.MethodPost, "/api/assist/cover", `{"title":"Kyoto","content":"Cafes"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		CoverImage string `json:"coverImage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CoverImage != "" {
		t.Fatalf("expected empty cover image, got %q", resp.CoverImage)
	}
}
