package ports

import (
	"context"
	"io"
)

// SearchResult holds the outcome of a provider search.
// RawResponse preserves the exact API response for the job archive.
type SearchResult struct {
	RawResponse []byte // Full JSON response, untouched
	VideoURL    string // Chosen video download URL
}

// VideoSource defines the contract for finding a background video.
type VideoSource interface {
	// FindVideo searches the provider with the given query and picks
	// one downloadable video URL from the results.
	FindVideo(ctx context.Context, query string) (*SearchResult, error)
}

// Synthesizer defines the contract for turning script text into a
// narration audio file at outPath.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice, outPath string) error
}

// Downloader defines the contract for downloading video files.
type Downloader interface {
	// Download fetches the video from the given URL.
	// Returns a ReadCloser that the caller must close.
	Download(ctx context.Context, videoURL string) (io.ReadCloser, error)
}

// Encoder defines the contract for compositing the background video
// with the narration audio into the final artifact at outPath.
type Encoder interface {
	Compose(ctx context.Context, videoPath, audioPath, outPath string) error
}

// Storage defines the contract for persisting job artifacts.
type Storage interface {
	// InitJob creates the artifact directory structure.
	InitJob(ctx context.Context) error

	// SaveManifest saves the job input parameters.
	SaveManifest(ctx context.Context, data []byte) error

	// SaveSearchResult saves the raw provider API response without modification.
	SaveSearchResult(ctx context.Context, data []byte) error

	// SaveBackground saves the background video from the provided reader.
	SaveBackground(ctx context.Context, reader io.Reader) error

	// NarrationPath returns the path the narration audio is written to.
	NarrationPath() string

	// BackgroundPath returns the path the background video is written to.
	BackgroundPath() string

	// OutputPath returns the path of the final composited video.
	OutputPath() string
}

// Rand is the randomness source behind provider and candidate
// selection. *math/rand.Rand satisfies it; tests substitute a
// deterministic implementation.
type Rand interface {
	Intn(n int) int
}
