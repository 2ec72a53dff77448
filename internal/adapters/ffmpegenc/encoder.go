package ffmpegenc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"clipforge/internal/core/domain"
)

// Target frame for short-form vertical video.
const (
	outputWidth  = 1080
	outputHeight = 1920
)

// Encoder implements ports.Encoder by shelling out to ffmpeg.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Compose scales and center-crops the background video to 1080x1920,
// muxes the narration audio over it, and truncates to the shorter
// stream. The subprocess runs to completion; the ctx parameter is
// accepted for interface symmetry but the encode is not cancellable.
func (e *Encoder) Compose(ctx context.Context, videoPath, audioPath, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", outPath)
	}

	var stderr bytes.Buffer
	err := buildStream(videoPath, audioPath, outPath).
		WithErrorOutput(&stderr).
		Run()
	if err != nil {
		return errors.Wrapf(domain.ErrEncodingFailed, "ffmpeg: %v, output: %s", err, stderr.String())
	}

	return nil
}

// buildStream constructs the ffmpeg invocation. Split out so tests can
// inspect the compiled argument list without running ffmpeg.
func buildStream(videoPath, audioPath, outPath string) *ffmpeg.Stream {
	vf := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		outputWidth, outputHeight, outputWidth, outputHeight,
	)

	return ffmpeg.Output(
		[]*ffmpeg.Stream{
			ffmpeg.Input(videoPath),
			ffmpeg.Input(audioPath),
		},
		outPath,
		ffmpeg.KwArgs{
			"vf":      vf,
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"c:a":     "aac",
			// End when the shorter stream (audio or video) ends.
			"shortest": "",
		},
	).OverWriteOutput()
}
