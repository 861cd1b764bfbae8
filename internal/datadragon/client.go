package datadragon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/statikk/ddmirror/internal/config"
	"github.com/statikk/ddmirror/internal/domain"
)

const (
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// Client fetches versioned static game data from the Data Dragon CDN.
// Transient network and 5xx failures are retried with exponential backoff;
// a 404 means the version is not published and fails fast.
type Client struct {
	baseURL    string
	lang       string
	pinned     string // non-empty overrides version resolution
	cacheTTL   time.Duration
	httpClient *http.Client

	mu         sync.Mutex
	latest     string
	resolvedAt time.Time
}

func NewClient(cfg *config.Config) *Client {
	// Riot publishes new versions at most every couple of weeks; a few
	// minutes of caching keeps status queries cheap without a restart being
	// needed to notice a release.
	return &Client{
		baseURL:  cfg.DataDragonBaseURL,
		lang:     cfg.DataDragonLang,
		pinned:   cfg.DataDragonVersion,
		cacheTTL: cfg.VersionCacheTTL,
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
	}
}

// LatestVersion resolves the newest published version. The upstream list is
// ordered newest-first; the first element wins.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	if c.pinned != "" {
		return c.pinned, nil
	}

	c.mu.Lock()
	cached, resolvedAt := c.latest, c.resolvedAt
	c.mu.Unlock()
	if cached != "" && time.Since(resolvedAt) < c.cacheTTL {
		return cached, nil
	}

	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: empty version list", domain.ErrUpstreamUnavailable)
	}

	c.mu.Lock()
	c.latest = versions[0]
	c.resolvedAt = time.Now()
	c.mu.Unlock()
	return versions[0], nil
}

// FetchChampionIndex returns the champion IDs listed in the summary payload.
func (c *Client) FetchChampionIndex(ctx context.Context, version string) ([]string, error) {
	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseURL, version, c.lang)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(payload.Data))
	for id := range payload.Data {
		ids = append(ids, id)
	}
	return ids, nil
}

// FetchChampionDetail returns the raw detail record for one champion.
func (c *Client) FetchChampionDetail(ctx context.Context, version, championID string) (json.RawMessage, error) {
	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", c.baseURL, version, c.lang, championID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	raw, ok := payload.Data[championID]
	if !ok {
		return nil, fmt.Errorf("%w: champion %s missing from its own payload", domain.ErrMalformedUpstreamData, championID)
	}
	return raw, nil
}

// FetchItems returns the raw item records keyed by item ID.
func (c *Client) FetchItems(ctx context.Context, version string) (map[string]json.RawMessage, error) {
	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/%s/item.json", c.baseURL, version, c.lang)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// FetchRunes returns the raw rune path records. The payload is a bare array,
// one element per path, each nesting its slots and runes.
func (c *Client) FetchRunes(ctx context.Context, version string) ([]json.RawMessage, error) {
	var payload []json.RawMessage
	url := fmt.Sprintf("%s/cdn/%s/data/%s/runesReforged.json", c.baseURL, version, c.lang)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchSummonerSpells returns the raw summoner spell records keyed by ID.
func (c *Client) FetchSummonerSpells(ctx context.Context, version string) (map[string]json.RawMessage, error) {
	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/%s/summoner.json", c.baseURL, version, c.lang)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// Icon URL builders. The image CDN is a collaborator; these only compose URLs.

func (c *Client) ChampionIconURL(version, championID string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, championID)
}

func (c *Client) SpellIconURL(version, spellImage string) string {
	return fmt.Sprintf("%s/cdn/%s/img/spell/%s", c.baseURL, version, spellImage)
}

func (c *Client) PassiveIconURL(version, passiveImage string) string {
	return fmt.Sprintf("%s/cdn/%s/img/passive/%s", c.baseURL, version, passiveImage)
}

func (c *Client) ItemIconURL(version, itemID string) string {
	return fmt.Sprintf("%s/cdn/%s/img/item/%s.png", c.baseURL, version, itemID)
}

// getJSON issues a GET and decodes the response. A decode failure is a
// deterministic upstream defect and is never retried.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
			}
		}

		retry, err := c.tryGetJSON(ctx, url, v)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) tryGetJSON(ctx context.Context, url string, v any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, fmt.Errorf("%w: %s", domain.ErrVersionNotFound, url)
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return true, fmt.Errorf("%w: status %d from %s", domain.ErrUpstreamUnavailable, resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("%w: status %d from %s", domain.ErrUpstreamUnavailable, resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrMalformedUpstreamData, err)
	}
	return false, nil
}
