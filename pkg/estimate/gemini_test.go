package estimate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveText(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func client(srv *httptest.Server) *Gemini {
	g := NewGemini("test-key")
	g.BaseURL = srv.URL
	g.Client = srv.Client()
	return g
}

func TestEstimate(t *testing.T) {
	srv := serveText(t, `[
		{"name":"rice","calories":260,"weight":200,"calPer100g":130,"icon":"🍚"},
		{"name":"egg","calories":77.5,"weight":50,"calPer100g":155,"protein":"6g","icon":"🥚"}
	]`)
	defer srv.Close()

	got := client(srv).Estimate(context.Background(), "200g rice and an egg")
	if len(got) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(got))
	}
	if got[0].Name != "rice" || got[0].Weight != 200 || got[0].CalPer100g != 130 {
		t.Fatalf("unexpected first estimate: %+v", got[0])
	}
	// Loose float calories are rounded at the boundary.
	if got[1].Calories != 78 {
		t.Fatalf("expected rounded calories 78, got %d", got[1].Calories)
	}
	if got[1].Protein != "6g" {
		t.Fatalf("expected protein passthrough, got %q", got[1].Protein)
	}
}

func TestEstimateDropsMalformedEntries(t *testing.T) {
	srv := serveText(t, `[
		{"name":"","calories":100,"weight":100,"calPer100g":100},
		{"name":"ghost","calories":-5,"weight":100,"calPer100g":100},
		{"name":"weightless","calories":100,"weight":0,"calPer100g":100},
		{"name":"ok","calories":100,"weight":100,"calPer100g":100}
	]`)
	defer srv.Close()

	got := client(srv).Estimate(context.Background(), "suspicious meal")
	if len(got) != 1 || got[0].Name != "ok" {
		t.Fatalf("expected only the well-formed entry, got %+v", got)
	}
}

func TestEstimateFailuresReturnEmpty(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()
		if got := client(srv).Estimate(context.Background(), "rice"); len(got) != 0 {
			t.Fatalf("expected empty on API error, got %+v", got)
		}
	})

	t.Run("unparseable body", func(t *testing.T) {
		srv := serveText(t, "sorry, I can only answer in prose")
		defer srv.Close()
		if got := client(srv).Estimate(context.Background(), "rice"); len(got) != 0 {
			t.Fatalf("expected empty on parse failure, got %+v", got)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := serveText(t, "[]")
		srv.Close() // refuse connections
		if got := client(srv).Estimate(context.Background(), "rice"); len(got) != 0 {
			t.Fatalf("expected empty on transport failure, got %+v", got)
		}
	})

	t.Run("blank input", func(t *testing.T) {
		g := NewGemini("key") // would fail if it ever made a call
		g.BaseURL = "http://127.0.0.1:0"
		if got := g.Estimate(context.Background(), "  "); len(got) != 0 {
			t.Fatalf("expected no-op for blank input, got %+v", got)
		}
	})
}

func TestQuote(t *testing.T) {
	srv := serveText(t, "  One bite at a time.  ")
	defer srv.Close()

	if got := client(srv).Quote(context.Background(), "en"); got != "One bite at a time." {
		t.Fatalf("unexpected quote %q", got)
	}
}

func TestQuoteFallbacks(t *testing.T) {
	t.Run("failure uses fixed fallback", func(t *testing.T) {
		srv := serveText(t, "unused")
		srv.Close()
		g := client(srv)
		if got := g.Quote(context.Background(), "en"); got != FallbackQuote("en") {
			t.Fatalf("expected %q, got %q", FallbackQuote("en"), got)
		}
		if got := g.Quote(context.Background(), "zh"); got != FallbackQuote("zh") {
			t.Fatalf("expected %q, got %q", FallbackQuote("zh"), got)
		}
	})

	t.Run("empty reply uses default", func(t *testing.T) {
		srv := serveText(t, "")
		defer srv.Close()
		if got := client(srv).Quote(context.Background(), "en"); got != DefaultQuote("en") {
			t.Fatalf("expected %q, got %q", DefaultQuote("en"), got)
		}
	})

	t.Run("quotes are never empty", func(t *testing.T) {
		for _, lang := range []string{"en", "zh", "fr"} {
			if DefaultQuote(lang) == "" || FallbackQuote(lang) == "" {
				t.Fatalf("empty fallback for %q", lang)
			}
		}
	})
}
