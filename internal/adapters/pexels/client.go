package pexels

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"clipforge/internal/core/domain"
	"clipforge/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.pexels.com"
	perPage        = 10
)

// Client implements ports.VideoSource against the Pexels videos API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	rng     ports.Rand
}

// New creates a Pexels client. An empty key is not rejected here; it
// surfaces as a credential error on the first FindVideo call.
func New(apiKey string, rng ports.Rand) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		rng: rng,
	}
}

type searchResponse struct {
	Videos []video `json:"videos"`
}

type video struct {
	VideoFiles []videoFile `json:"video_files"`
}

type videoFile struct {
	Link   string `json:"link"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FindVideo searches Pexels for portrait videos matching query and
// picks one file link at random, preferring portrait-ish variants
// (width <= height) and falling back to any link when none qualify.
func (c *Client) FindVideo(ctx context.Context, query string) (*ports.SearchResult, error) {
	if c.apiKey == "" {
		return nil, errors.Wrap(domain.ErrMissingCredential, "PEXELS_API_KEY is not set")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "portrait")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pexels request")
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pexels search request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pexels response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("pexels search returned status %d: %s", resp.StatusCode, string(raw))
	}

	var data searchResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to decode pexels response")
	}

	if len(data.Videos) == 0 {
		return nil, errors.Wrapf(domain.ErrNoMediaFound, "pexels returned no videos for %q", query)
	}

	// Prefer portrait-ish files (width <= height).
	var candidates []string
	for _, v := range data.Videos {
		for _, f := range v.VideoFiles {
			if f.Link != "" && f.Width <= f.Height {
				candidates = append(candidates, f.Link)
			}
		}
	}
	if len(candidates) == 0 {
		// Fallback: any file
		for _, v := range data.Videos {
			for _, f := range v.VideoFiles {
				if f.Link != "" {
					candidates = append(candidates, f.Link)
				}
			}
		}
	}
	if len(candidates) == 0 {
		return nil, errors.Wrap(domain.ErrNoDownloadableLink, "no downloadable pexels video link found")
	}

	return &ports.SearchResult{
		RawResponse: raw,
		VideoURL:    candidates[c.rng.Intn(len(candidates))],
	}, nil
}
