package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"clipforge/internal/config"
	"clipforge/internal/core/domain"
	"clipforge/internal/core/ports"
)

// minOutputSize is the plausibility floor for the final artifact.
// Anything smaller is treated as a silent encoder failure.
const minOutputSize = 10000

// Orchestrator coordinates the render pipeline: narration synthesis,
// background fetch, download, and compositing, in that order. Any
// stage failure aborts the run; nothing is retried or cleaned up.
type Orchestrator struct {
	synth      ports.Synthesizer
	sources    map[domain.Provider]ports.VideoSource
	downloader ports.Downloader
	storage    ports.Storage
	encoder    ports.Encoder
	logger     zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	synth ports.Synthesizer,
	sources map[domain.Provider]ports.VideoSource,
	downloader ports.Downloader,
	storage ports.Storage,
	encoder ports.Encoder,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		synth:      synth,
		sources:    sources,
		downloader: downloader,
		storage:    storage,
		encoder:    encoder,
		logger:     logger,
	}
}

// RunJob executes one complete render job for the given configuration.
func (o *Orchestrator) RunJob(ctx context.Context, cfg *config.Config) (*domain.JobResult, error) {
	job := domain.Job{
		ID:        cfg.JobID,
		RunID:     uuid.New().String(),
		Topic:     cfg.Topic,
		Provider:  cfg.Provider,
		Voice:     cfg.Voice,
		CreatedAt: time.Now().UTC(),
	}

	result := &domain.JobResult{Job: job, Success: false}
	log := o.logger.With().Str("job_id", job.ID).Str("run_id", job.RunID).Logger()
	log.Info().Str("topic", job.Topic).Str("provider", string(job.Provider)).Msg("starting render job")

	if err := o.storage.InitJob(ctx); err != nil {
		return o.fail(result, &log, err, "failed to init job storage")
	}

	manifest, _ := json.MarshalIndent(job, "", "  ")
	if err := o.storage.SaveManifest(ctx, manifest); err != nil {
		return o.fail(result, &log, err, "failed to save job manifest")
	}

	// Stage 1: narration synthesis
	log.Info().Str("stage", "tts").Str("voice", cfg.Voice).Msg("synthesizing narration")
	if err := o.synth.Synthesize(ctx, cfg.Script, cfg.Voice, o.storage.NarrationPath()); err != nil {
		return o.fail(result, &log, err, "narration synthesis failed")
	}
	result.NarrationPath = o.storage.NarrationPath()

	// Stage 2: background search
	query := domain.SafeQuery(cfg.Topic)
	source, ok := o.sources[cfg.Provider]
	if !ok {
		return o.fail(result, &log, errors.Errorf("no source configured for provider %s", cfg.Provider), "unknown provider")
	}
	log.Info().Str("stage", "video").Str("provider", string(cfg.Provider)).Str("query", query).Msg("searching background video")
	search, err := source.FindVideo(ctx, query)
	if err != nil {
		return o.fail(result, &log, err, "background video search failed")
	}
	if err := o.storage.SaveSearchResult(ctx, search.RawResponse); err != nil {
		return o.fail(result, &log, err, "failed to save search response")
	}

	// Stage 3: download
	log.Info().Str("stage", "download").Str("url", search.VideoURL).Msg("downloading background video")
	body, err := o.downloader.Download(ctx, search.VideoURL)
	if err != nil {
		return o.fail(result, &log, err, "background video download failed")
	}
	defer body.Close()
	if err := o.storage.SaveBackground(ctx, body); err != nil {
		return o.fail(result, &log, err, "failed to save background video")
	}
	result.BackgroundPath = o.storage.BackgroundPath()

	// Stage 4: compositing
	outPath := o.storage.OutputPath()
	log.Info().Str("stage", "ffmpeg").Str("output", outPath).Msg("rendering final video")
	if err := o.encoder.Compose(ctx, o.storage.BackgroundPath(), o.storage.NarrationPath(), outPath); err != nil {
		return o.fail(result, &log, err, "encoding failed")
	}

	// The encoder can report success without producing a usable file;
	// verify the artifact independently.
	if err := validateOutput(outPath); err != nil {
		return o.fail(result, &log, err, "output validation failed")
	}
	result.OutputPath = outPath

	result.Success = true
	result.CompletedAt = time.Now().UTC()
	log.Info().Str("output", outPath).Msg("render job completed")

	return result, nil
}

// validateOutput checks that the final artifact exists and exceeds the
// minimum plausible size.
func validateOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(domain.ErrOutputInvalid, "%s: %v", path, err)
	}
	if info.Size() < minOutputSize {
		return errors.Wrapf(domain.ErrOutputInvalid, "%s is %d bytes, need at least %d", path, info.Size(), minOutputSize)
	}
	return nil
}

func (o *Orchestrator) fail(result *domain.JobResult, log *zerolog.Logger, err error, msg string) (*domain.JobResult, error) {
	result.ErrorMessage = err.Error()
	log.Error().Err(err).Msg(msg)
	return result, err
}
