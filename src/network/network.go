package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"market-watch/src/helpers"
	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
}

// -----------------------------------------------------------------------------

// Manager performs GET requests with retries, exponential backoff and a
// rotating User-Agent. Rate-limit responses surface as a typed error so the
// cache layer can fall back to stale data.
type Manager struct {
	Config  *models.MConfig
	Client  *http.Client
	Logger  *logger.Logger
	uaIndex atomic.Uint64
	agents  []string
}

// -----------------------------------------------------------------------------

func NewManager(cfg *models.MConfig, log *logger.Logger) *Manager {
	agents := cfg.Network.UserAgents
	if len(agents) == 0 {
		agents = defaultUserAgents
	}

	return &Manager{
		Config: cfg,
		Logger: log,
		agents: agents,
		Client: &http.Client{
			Timeout: time.Duration(cfg.Network.RequestTimeout) * time.Second,
		},
	}
}

// -----------------------------------------------------------------------------

func (nm *Manager) nextUserAgent() string {
	i := nm.uaIndex.Add(1)
	return nm.agents[int(i)%len(nm.agents)]
}

// -----------------------------------------------------------------------------

// Get performs a GET request with retries.
func (nm *Manager) Get(urlStr string, params map[string]string) ([]byte, error) {
	reqURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	q := reqURL.Query()
	for k, v := range params {
		q.Add(k, v)
	}
	reqURL.RawQuery = q.Encode()

	finalURL := reqURL.String()

	maxRetries := nm.Config.Network.MaxRetries
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			time.Sleep(time.Duration(i*i) * time.Second) // Exponential backoff
		}

		body, err := nm.getOnce(finalURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		nm.Logger.Debug("Request failed (attempt %d/%d): %v", i+1, maxRetries+1, err)

		// Retrying immediately after a rate limit only digs the hole deeper.
		if _, rateLimited := lastErr.(*helpers.RateLimitError); rateLimited {
			break
		}
	}

	return nil, lastErr
}

// -----------------------------------------------------------------------------

func (nm *Manager) getOnce(finalURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", nm.nextUserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := nm.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
		return nil, &helpers.RateLimitError{URL: finalURL, Status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
