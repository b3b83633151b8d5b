// Package fetcher downloads page markup over HTTP.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"
)

// Some publishers serve structured data only to browser user agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const DefaultTimeout = 20 * time.Second

type Fetcher struct {
	client        *http.Client
	respectRobots bool

	mu     sync.Mutex
	robots map[string]*robotstxt.Group
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		robots: make(map[string]*robotstxt.Group),
	}
}

// RespectRobots turns on the robots.txt gate. Disallowed URLs then fail
// instead of being fetched.
func (f *Fetcher) RespectRobots() {
	f.respectRobots = true
}

// GetMarkup downloads rawURL and returns the decoded body and HTTP status.
// Non-2xx responses are not errors: the body and status flow through so the
// caller can still mine whatever markup the server returned. Only transport
// failures and robots.txt denials produce an error.
func (f *Fetcher) GetMarkup(rawURL string) (string, int, error) {
	if f.respectRobots {
		if err := f.checkRobots(rawURL); err != nil {
			return "", 0, err
		}
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	// Non-UTF-8 pages get transcoded; if the charset is unknown, read raw.
	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		utf8Reader = resp.Body
	}

	bodyBytes, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return string(bodyBytes), resp.StatusCode, nil
}

func (f *Fetcher) checkRobots(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	group := f.robotsGroup(u)
	if group != nil && !group.Test(u.Path) {
		return fmt.Errorf("blocked by robots.txt: %s", rawURL)
	}
	return nil
}

// robotsGroup fetches and caches the robots.txt group for the URL's host.
// Hosts whose robots.txt cannot be fetched or parsed are treated as
// allow-all and cached as nil so they are not retried on every request.
func (f *Fetcher) robotsGroup(u *url.URL) *robotstxt.Group {
	host := strings.ToLower(u.Host)

	f.mu.Lock()
	defer f.mu.Unlock()
	if group, ok := f.robots[host]; ok {
		return group
	}

	f.robots[host] = nil
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	resp, err := f.client.Get(robotsURL)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	group := data.FindGroup(userAgent)
	f.robots[host] = group
	return group
}
