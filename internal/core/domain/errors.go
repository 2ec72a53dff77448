package domain

import "github.com/pkg/errors"

// Every pipeline failure is fatal: errors are wrapped with context at
// the point they occur and propagate unhandled to main. Callers
// discriminate with errors.Is against these sentinels.
var (
	// ErrEmptyScript means the required script text was missing or blank.
	ErrEmptyScript = errors.New("script is empty")

	// ErrMissingCredential means the API key for the selected provider is not set.
	ErrMissingCredential = errors.New("missing provider API key")

	// ErrNoMediaFound means the provider search returned zero results.
	ErrNoMediaFound = errors.New("no videos found for query")

	// ErrNoDownloadableLink means results existed but no usable file link did.
	ErrNoDownloadableLink = errors.New("no downloadable video link found")

	// ErrSynthesisFailed means the text-to-speech subprocess exited non-zero.
	ErrSynthesisFailed = errors.New("speech synthesis failed")

	// ErrEncodingFailed means the media-encoding subprocess exited non-zero.
	ErrEncodingFailed = errors.New("video encoding failed")

	// ErrOutputInvalid means the final artifact is missing or implausibly small
	// even though the encoder reported success.
	ErrOutputInvalid = errors.New("output file missing or too small")
)
