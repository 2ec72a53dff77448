package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clipforge/internal/adapters/downloader"
	"clipforge/internal/adapters/edgetts"
	"clipforge/internal/adapters/ffmpegenc"
	"clipforge/internal/adapters/localstorage"
	"clipforge/internal/adapters/pexels"
	"clipforge/internal/adapters/pixabay"
	"clipforge/internal/config"
	"clipforge/internal/core/domain"
	"clipforge/internal/core/ports"
	"clipforge/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "clipforge",
	Short: "Render a short vertical video from script text and a stock background",
	Long: `clipforge runs one render job per invocation: it synthesizes narration
from SCRIPT via edge-tts, fetches a background clip from Pexels or
Pixabay matching TOPIC, and composites both into a 1080x1920 mp4.

All job parameters come from the environment (a .env file is honored):
JOB_ID, TOPIC, SCRIPT, PROVIDER, VOICE, PEXELS_API_KEY, PIXABAY_API_KEY.

Example:
  SCRIPT="Five facts about the deep sea" TOPIC="ocean" clipforge --data-dir ./out`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().String("data-dir", "", "Directory for job artifacts (default $DATA_DIR or \"out\")")
}

func run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	cfg, err := config.Load(rng)
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	storage := localstorage.NewLocalStorage(cfg.DataDir)

	sources := map[domain.Provider]ports.VideoSource{
		domain.ProviderPexels:  pexels.New(cfg.PexelsKey, rng),
		domain.ProviderPixabay: pixabay.New(cfg.PixabayKey, rng),
	}

	orchestrator := service.NewOrchestrator(
		edgetts.New(),
		sources,
		downloader.NewHTTPDownloader(),
		storage,
		ffmpegenc.NewEncoder(),
		logger,
	)

	result, err := orchestrator.RunJob(context.Background(), cfg)
	if err != nil {
		return err
	}

	summary, err := json.MarshalIndent(domain.Summary{
		JobID:    result.Job.ID,
		Topic:    result.Job.Topic,
		Provider: string(result.Job.Provider),
		Voice:    result.Job.Voice,
		Output:   result.OutputPath,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(summary))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
