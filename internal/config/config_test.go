package config

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"clipforge/internal/core/domain"
)

// fixedRand always returns the same value, pinning random choices.
type fixedRand struct{ n int }

func (r fixedRand) Intn(max int) int {
	if r.n >= max {
		return max - 1
	}
	return r.n
}

func clearJobEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JOB_ID", "TOPIC", "SCRIPT", "PROVIDER", "VOICE", "PEXELS_API_KEY", "PIXABAY_API_KEY", "DATA_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresScript(t *testing.T) {
	clearJobEnv(t)

	if _, err := Load(fixedRand{0}); !errors.Is(err, domain.ErrEmptyScript) {
		t.Fatalf("expected ErrEmptyScript, got %v", err)
	}

	t.Setenv("SCRIPT", "   \t\n  ")
	if _, err := Load(fixedRand{0}); !errors.Is(err, domain.ErrEmptyScript) {
		t.Fatalf("expected ErrEmptyScript for whitespace script, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearJobEnv(t)
	t.Setenv("SCRIPT", "hello world")

	cfg, err := Load(fixedRand{0})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Topic != "trend" {
		t.Errorf("expected default topic %q, got %q", "trend", cfg.Topic)
	}
	if cfg.Voice != "en-US-AriaNeural" {
		t.Errorf("unexpected default voice %q", cfg.Voice)
	}
	if cfg.ProviderPref != "BOTH" {
		t.Errorf("expected default preference BOTH, got %q", cfg.ProviderPref)
	}
	if cfg.JobID == "" {
		t.Error("expected a timestamp-derived job id, got empty string")
	}
	if cfg.DataDir != "out" {
		t.Errorf("expected default data dir out, got %q", cfg.DataDir)
	}
}

func TestResolveProviderExactMatch(t *testing.T) {
	cases := []struct {
		pref string
		want domain.Provider
	}{
		{"PEXELS", domain.ProviderPexels},
		{"pexels", domain.ProviderPexels},
		{" Pexels ", domain.ProviderPexels},
		{"PIXABAY", domain.ProviderPixabay},
		{"pixabay", domain.ProviderPixabay},
	}

	for _, c := range cases {
		// A deterministic rng pinned to the opposite answer proves the
		// match is deterministic, not a lucky draw.
		for _, r := range []fixedRand{{0}, {1}} {
			if got := ResolveProvider(c.pref, r); got != c.want {
				t.Errorf("ResolveProvider(%q) = %v, want %v", c.pref, got, c.want)
			}
		}
	}
}

func TestResolveProviderUnrecognizedIsRandom(t *testing.T) {
	if got := ResolveProvider("BOTH", fixedRand{0}); got != domain.ProviderPexels {
		t.Errorf("with rng=0 expected PEXELS, got %v", got)
	}
	if got := ResolveProvider("BOTH", fixedRand{1}); got != domain.ProviderPixabay {
		t.Errorf("with rng=1 expected PIXABAY, got %v", got)
	}
	// An unknown value is not an error, it falls back to random too.
	if got := ResolveProvider("definitely-not-a-provider", fixedRand{1}); got != domain.ProviderPixabay {
		t.Errorf("unknown preference with rng=1 expected PIXABAY, got %v", got)
	}
}

func TestResolveProviderDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const runs = 2000
	counts := map[domain.Provider]int{}
	for i := 0; i < runs; i++ {
		counts[ResolveProvider("BOTH", rng)]++
	}

	// Both providers should show up with roughly equal frequency.
	for _, p := range []domain.Provider{domain.ProviderPexels, domain.ProviderPixabay} {
		if counts[p] < runs/3 {
			t.Errorf("provider %s chosen %d/%d times, expected roughly half", p, counts[p], runs)
		}
	}
}
