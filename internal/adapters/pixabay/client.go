package pixabay

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
	defaultBaseURL = "https://pixabay.com"
	perPage        = 10
)

// qualityTiers is the preference order for picking a rendition per hit,
// largest first.
var qualityTiers = []string{"large", "medium", "small", "tiny"}

// Client implements ports.VideoSource against the Pixabay videos API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	rng     ports.Rand
}

// New creates a Pixabay client. An empty key is not rejected here; it
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
	Hits []hit `json:"hits"`
}

type hit struct {
	Videos map[string]rendition `json:"videos"`
}

type rendition struct {
	URL string `json:"url"`
}

// FindVideo searches Pixabay for videos matching query and picks one
// URL at random. Each hit contributes its best available quality tier.
func (c *Client) FindVideo(ctx context.Context, query string) (*ports.SearchResult, error) {
	if c.apiKey == "" {
		return nil, errors.Wrap(domain.ErrMissingCredential, "PIXABAY_API_KEY is not set")
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/videos/?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pixabay request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pixabay search request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pixabay response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("pixabay search returned status %d: %s", resp.StatusCode, string(raw))
	}

	var data searchResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to decode pixabay response")
	}

	if len(data.Hits) == 0 {
		return nil, errors.Wrapf(domain.ErrNoMediaFound, "pixabay returned no videos for %q", query)
	}

	var candidates []string
	for _, h := range data.Hits {
		for _, tier := range qualityTiers {
			if r, ok := h.Videos[tier]; ok && r.URL != "" {
				candidates = append(candidates, r.URL)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return nil, errors.Wrap(domain.ErrNoDownloadableLink, "no downloadable pixabay video url found")
	}

	return &ports.SearchResult{
		RawResponse: raw,
		VideoURL:    candidates[c.rng.Intn(len(candidates))],
	}, nil
}
