package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"clipforge/internal/core/domain"
	"clipforge/internal/core/ports"
)

// Config carries every parameter of a render job. It is loaded once
// from the environment at startup and passed explicitly through the
// pipeline; nothing re-reads ambient state after Load returns.
type Config struct {
	JobID string
	Topic string
	// Script is the narration text. The single required input.
	Script string
	Voice  string

	// Provider is the resolved choice; ProviderPref keeps the raw
	// input value for the job manifest.
	Provider     domain.Provider
	ProviderPref string

	PexelsKey  string
	PixabayKey string

	// DataDir is the working directory artifacts are written under.
	DataDir string
}

// Load reads the job configuration from the environment. rng backs the
// random provider choice when the preference names neither provider.
func Load(rng ports.Rand) (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	pref := getEnv("PROVIDER", "BOTH")

	cfg := &Config{
		JobID:        getEnv("JOB_ID", fmt.Sprintf("job_%d", time.Now().Unix())),
		Topic:        getEnv("TOPIC", "trend"),
		Script:       getEnv("SCRIPT", ""),
		Voice:        getEnv("VOICE", "en-US-AriaNeural"),
		Provider:     ResolveProvider(pref, rng),
		ProviderPref: pref,
		PexelsKey:    getEnv("PEXELS_API_KEY", ""),
		PixabayKey:   getEnv("PIXABAY_API_KEY", ""),
		DataDir:      getEnv("DATA_DIR", "out"),
	}

	if strings.TrimSpace(cfg.Script) == "" {
		return nil, errors.Wrap(domain.ErrEmptyScript, "SCRIPT must be set to the narration text")
	}

	return cfg, nil
}

// ResolveProvider maps a provider preference onto a concrete provider.
// Anything other than an exact case-insensitive provider name (the
// documented "BOTH" default included) means a uniform random choice.
func ResolveProvider(pref string, rng ports.Rand) domain.Provider {
	switch domain.Provider(strings.ToUpper(strings.TrimSpace(pref))) {
	case domain.ProviderPexels:
		return domain.ProviderPexels
	case domain.ProviderPixabay:
		return domain.ProviderPixabay
	}
	if rng.Intn(2) == 0 {
		return domain.ProviderPexels
	}
	return domain.ProviderPixabay
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
