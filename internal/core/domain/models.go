package domain

import "time"

// Provider identifies a stock-video provider.
type Provider string

const (
	ProviderPexels  Provider = "PEXELS"
	ProviderPixabay Provider = "PIXABAY"
)

// Job represents a single render job.
type Job struct {
	ID        string    `json:"job_id"`
	RunID     string    `json:"run_id"`
	Topic     string    `json:"topic"`
	Provider  Provider  `json:"provider"`
	Voice     string    `json:"voice"`
	CreatedAt time.Time `json:"created_at"`
}

// JobResult holds the outcome of a completed job.
type JobResult struct {
	Job            Job
	NarrationPath  string
	BackgroundPath string
	OutputPath     string
	Success        bool
	ErrorMessage   string
	CompletedAt    time.Time
}

// Summary is the machine-readable success report printed to stdout.
type Summary struct {
	JobID    string `json:"job_id"`
	Topic    string `json:"topic"`
	Provider string `json:"provider"`
	Voice    string `json:"voice"`
	Output   string `json:"output"`
}
