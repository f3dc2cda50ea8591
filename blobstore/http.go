package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultDatasetURL is the public location of the IMDb dataset dumps.
const DefaultDatasetURL = "https://datasets.imdbws.com/"

// HTTPStore implements BlobStore over a base URL using HEAD for sizes
// and ranged GETs for reads.
type HTTPStore struct {
	base   *url.URL
	client *http.Client
}

// HTTPOption configures an HTTPStore.
type HTTPOption func(*HTTPStore)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPStore) {
		if c != nil {
			s.client = c
		}
	}
}

// NewHTTPStore creates a store rooted at baseURL. An empty baseURL selects
// DefaultDatasetURL.
func NewHTTPStore(baseURL string, opts ...HTTPOption) (*HTTPStore, error) {
	if baseURL == "" {
		baseURL = DefaultDatasetURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("blobstore: unsupported url scheme %q", u.Scheme)
	}

	s := &HTTPStore{base: u, client: http.DefaultClient}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HTTPStore) url(name string) string {
	return s.base.ResolveReference(&url.URL{Path: name}).String()
}

// Open checks the blob with a HEAD request.
func (s *HTTPStore) Open(ctx context.Context, name string) (Blob, error) {
	target := s.url(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("blobstore: HEAD %s: %s", target, resp.Status)
	case resp.ContentLength < 0:
		return nil, fmt.Errorf("blobstore: HEAD %s: unknown content length", target)
	}

	return &httpBlob{client: s.client, url: target, size: resp.ContentLength}, nil
}

type httpBlob struct {
	client *http.Client
	url    string
	size   int64
}

func (b *httpBlob) Close() error {
	return nil
}

func (b *httpBlob) Size() int64 {
	return b.size
}

func (b *httpBlob) ReadRange(ctx context.Context, off, n int64) (io.ReadCloser, error) {
	end, err := Span(b.size, off, n)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, end))

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusPartialContent:
		return resp.Body, nil
	case http.StatusOK:
		// Server ignored the Range header.
		if _, err := io.CopyN(io.Discard, resp.Body, off); err != nil {
			_ = resp.Body.Close()
			return nil, err
		}
		return &limitedBody{Reader: io.LimitReader(resp.Body, end-off+1), c: resp.Body}, nil
	case http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, ErrNotFound
	default:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("blobstore: GET %s: %s", b.url, resp.Status)
	}
}

type limitedBody struct {
	io.Reader
	c io.Closer
}

func (l *limitedBody) Close() error {
	return l.c.Close()
}
