package pexels

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"

	"clipforge/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New("test-key", rand.New(rand.NewSource(1)))
	c.baseURL = server.URL
	return c
}

func TestFindVideoMissingCredential(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := New("", rand.New(rand.NewSource(1)))
	c.baseURL = server.URL

	_, err := c.FindVideo(context.Background(), "ocean")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("expected no HTTP calls with a missing key, got %d", n)
	}
}

func TestFindVideoPrefersPortrait(t *testing.T) {
	body := `{"videos":[
		{"video_files":[
			{"link":"https://cdn.test/landscape1.mp4","width":1920,"height":1080},
			{"link":"https://cdn.test/portrait1.mp4","width":1080,"height":1920}
		]},
		{"video_files":[
			{"link":"https://cdn.test/portrait2.mp4","width":720,"height":1280},
			{"link":"https://cdn.test/landscape2.mp4","width":1280,"height":720}
		]}
	]}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("expected Authorization header, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "ocean" || q.Get("per_page") != "10" || q.Get("orientation") != "portrait" {
			t.Errorf("unexpected query params: %v", q)
		}
		w.Write([]byte(body))
	})

	portrait := map[string]bool{
		"https://cdn.test/portrait1.mp4": true,
		"https://cdn.test/portrait2.mp4": true,
	}

	// Landscape links must never win while portrait candidates exist.
	for i := 0; i < 50; i++ {
		res, err := c.FindVideo(context.Background(), "ocean")
		if err != nil {
			t.Fatalf("FindVideo failed: %v", err)
		}
		if !portrait[res.VideoURL] {
			t.Fatalf("picked non-portrait link %q", res.VideoURL)
		}
	}
}

func TestFindVideoFallsBackToAnyLink(t *testing.T) {
	body := `{"videos":[
		{"video_files":[{"link":"https://cdn.test/wide.mp4","width":1920,"height":1080}]}
	]}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	res, err := c.FindVideo(context.Background(), "ocean")
	if err != nil {
		t.Fatalf("FindVideo failed: %v", err)
	}
	if res.VideoURL != "https://cdn.test/wide.mp4" {
		t.Errorf("expected fallback link, got %q", res.VideoURL)
	}
	if len(res.RawResponse) == 0 {
		t.Error("expected raw response to be preserved")
	}
}

func TestFindVideoNoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"videos":[]}`))
	})

	_, err := c.FindVideo(context.Background(), "ocean")
	if !errors.Is(err, domain.ErrNoMediaFound) {
		t.Fatalf("expected ErrNoMediaFound, got %v", err)
	}
}

func TestFindVideoNoUsableLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"videos":[{"video_files":[{"link":"","width":0,"height":0}]}]}`))
	})

	_, err := c.FindVideo(context.Background(), "ocean")
	if !errors.Is(err, domain.ErrNoDownloadableLink) {
		t.Fatalf("expected ErrNoDownloadableLink, got %v", err)
	}
}

func TestFindVideoHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := c.FindVideo(context.Background(), "ocean"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
