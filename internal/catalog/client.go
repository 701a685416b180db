package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCatalogURL = "https://openlibrary.org"
	DefaultCoverURL   = "https://covers.openlibrary.org"
	DefaultUserAgent  = "bookfinder/1.0"

	searchPath = "/search.json"
)

// Options configures a Client. Zero values fall back to the Open Library defaults.
type Options struct {
	CatalogURL string
	CoverURL   string
	UserAgent  string
	// Timeout of 0 leaves requests bounded only by the transport.
	Timeout time.Duration
}

// Client performs searches against the catalog service.
type Client struct {
	http       *http.Client
	catalogURL string
	coverURL   string
	userAgent  string
	logger     logrus.FieldLogger
}

// New creates a new catalog client.
func New(opts Options, logger logrus.FieldLogger) *Client {
	if opts.CatalogURL == "" {
		opts.CatalogURL = DefaultCatalogURL
	}
	if opts.CoverURL == "" {
		opts.CoverURL = DefaultCoverURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		http: &http.Client{
			Timeout: opts.Timeout,
		},
		catalogURL: strings.TrimRight(opts.CatalogURL, "/"),
		coverURL:   strings.TrimRight(opts.CoverURL, "/"),
		userAgent:  opts.UserAgent,
		logger:     logger,
	}
}

// Search fetches one page of records whose title matches query.
// Exactly one request is issued; there is no retry.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("title", query)
	params.Set("page", strconv.Itoa(page))

	searchURL := c.catalogURL + searchPath + "?" + params.Encode()

	c.logger.WithFields(logrus.Fields{
		"query": query,
		"page":  page,
		"url":   searchURL,
	}).Debug("searching catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, wrapError("search", query, page, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError("search", query, page, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, wrapError("search", query, page, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, wrapError("search", query, page, fmt.Errorf("%w: %v", ErrDecode, err))
	}

	c.logger.WithFields(logrus.Fields{
		"query":     query,
		"page":      page,
		"num_found": searchResp.NumFound,
		"docs":      len(searchResp.Docs),
	}).Debug("catalog search results")

	return &searchResp, nil
}

// CoverURL returns the image URL for a cover id at the given size.
func (c *Client) CoverURL(coverID int, size CoverSize) string {
	if size == "" {
		size = CoverMedium
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coverURL, coverID, size)
}

// DetailURL returns the public page of the record identified by key.
func (c *Client) DetailURL(key string) string {
	if key != "" && !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	return c.catalogURL + key
}
