package edgetts

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"clipforge/internal/core/domain"
)

// Synthesizer uses the local edge-tts binary to render narration audio.
type Synthesizer struct {
	binaryPath string
}

// New creates a Synthesizer that assumes edge-tts is in PATH.
func New() *Synthesizer {
	return &Synthesizer{binaryPath: "edge-tts"}
}

// NewWithBinary creates a Synthesizer for a specific binary path.
func NewWithBinary(path string) *Synthesizer {
	return &Synthesizer{binaryPath: path}
}

// Synthesize runs edge-tts to convert text to speech at outPath.
// The subprocess runs to completion; no timeout is applied.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", outPath)
	}

	cmd := exec.CommandContext(ctx, s.binaryPath,
		"--voice", voice,
		"--text", text,
		"--write-media", outPath,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(domain.ErrSynthesisFailed, "edge-tts: %v, output: %s", err, string(out))
	}

	return nil
}
