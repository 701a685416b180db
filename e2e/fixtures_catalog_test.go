//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FakeCatalog serves search.json for the app under test
type FakeCatalog struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

type catalogOptions struct {
	numFound int
	status   int
}

// CatalogOption configures the fake catalog
type CatalogOption func(*catalogOptions)

// WithNumFound sets the total match count; each page is filled up to 10 docs
func WithNumFound(n int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.numFound = n
	}
}

// WithStatus makes every search answer with the given HTTP status
func WithStatus(code int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.status = code
	}
}

// StartCatalog starts a fake catalog that the next StartApp points at
func (tf *TUITestFramework) StartCatalog(options ...CatalogOption) *FakeCatalog {
	opts := &catalogOptions{numFound: 3, status: http.StatusOK}
	for _, opt := range options {
		opt(opts)
	}

	fc := &FakeCatalog{}
	fc.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc.mu.Lock()
		fc.requests = append(fc.requests, r.URL.RawQuery)
		fc.mu.Unlock()

		if opts.status != http.StatusOK {
			http.Error(w, "unavailable", opts.status)
			return
		}

		title := r.URL.Query().Get("title")
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		type doc struct {
			Key        string   `json:"key"`
			Title      string   `json:"title"`
			AuthorName []string `json:"author_name,omitempty"`
			Year       int      `json:"first_publish_year,omitempty"`
		}
		docs := []doc{}
		for i := (page-1)*10 + 1; i <= page*10 && i <= opts.numFound; i++ {
			docs = append(docs, doc{
				Key:        fmt.Sprintf("/works/OL%dW", i),
				Title:      fmt.Sprintf("%s volume %d", title, i),
				AuthorName: []string{"Test Author"},
				Year:       1900 + i,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"numFound": opts.numFound,
			"docs":     docs,
		})
	}))
	tf.t.Cleanup(fc.Close)

	tf.catalog = fc
	return fc
}

// Requests returns the raw query strings received so far
func (fc *FakeCatalog) Requests() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]string(nil), fc.requests...)
}

// CreateTestWorkspace creates a temporary HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// openerScript writes a launcher that records the URL instead of opening a browser
func (tf *TUITestFramework) openerScript() string {
	script := filepath.Join(tf.workspace, "opener.sh")
	body := "#!/bin/sh\necho \"$1\" >> \"" + tf.openedFile() + "\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		tf.t.Fatalf("failed to write opener script: %v", err)
	}
	return script
}

func (tf *TUITestFramework) openedFile() string {
	return filepath.Join(tf.workspace, "opened.txt")
}

// OpenedURLs returns the URLs passed to the opener so far
func (tf *TUITestFramework) OpenedURLs() []string {
	data, err := os.ReadFile(tf.openedFile())
	if err != nil {
		return nil
	}
	return strings.Fields(string(data))
}
