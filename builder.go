package storage

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// StorageURLEnv is consulted by [New] when no storage url is given.
const StorageURLEnv = "MONTHLY_CLOUD_STORAGE_URL"

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Storage builds resource urls and fetches them.
//
// A Storage is owned by one caller at a time: setters and fetches are not
// safe to interleave from several goroutines. Use [Storage.Clone] to get an
// independent builder per request.
type Storage struct {
	storageURL string
	loc        Locator

	client HTTPClient
	logger *slog.Logger
}

type Option func(*Storage)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *Storage) {
		s.client = client
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// WithTimeout uses a dedicated *http.Client with the given timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Storage) {
		if timeout > 0 {
			s.client = &http.Client{Timeout: timeout}
		}
	}
}

func WithLocale(locale string) Option {
	return func(s *Storage) {
		if !isEmpty(locale) {
			s.loc.Locale = locale
		}
	}
}

// New returns a builder for storageURL. An empty storageURL falls back to
// the MONTHLY_CLOUD_STORAGE_URL environment variable, read once here.
//
// Usage:
//
//	var content map[string]any
//	err := storage.New("").SetWebsite(1).FindContent(ctx, 2, &content)
func New(storageURL string, opts ...Option) *Storage {
	if isEmpty(storageURL) {
		storageURL = os.Getenv(StorageURLEnv)
	}

	s := &Storage{
		storageURL: storageURL,
		loc:        Locator{Locale: DefaultLocale},
		client:     http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clone returns an independent copy sharing the http client and logger.
func (s *Storage) Clone() *Storage {
	c := *s
	return &c
}

// ========================= SETTERS =========================

// SetEndpoint flushes the id and the previous endpoint, then sets endpoint.
//
// Usage:
//
//	builder.SetEndpoint("menus")
//	builder.SetEndpoint("contents/")
//	builder.SetEndpoint("/marketplaces") // root path, no website prefix
func (s *Storage) SetEndpoint(endpoint string) *Storage {
	s.Flush()
	s.loc.Endpoint = endpoint
	return s
}

func (s *Storage) SetID(id int64) *Storage {
	s.loc.ID = id
	return s
}

func (s *Storage) SetLocale(locale string) *Storage {
	s.loc.Locale = locale
	return s
}

func (s *Storage) SetWebsite(websiteID int64) *Storage {
	s.loc.WebsiteID = websiteID
	return s
}

func (s *Storage) SetMarketplace(marketplaceID int64) *Storage {
	s.loc.MarketplaceID = marketplaceID
	return s
}

func (s *Storage) SetList(listID int64) *Storage {
	s.loc.ListID = listID
	return s
}

func (s *Storage) SetStorageURL(storageURL string) *Storage {
	s.storageURL = storageURL
	return s
}

// Flush unsets the per-endpoint parameters: id and endpoint.
func (s *Storage) Flush() {
	s.loc.ID = 0
	s.loc.Endpoint = ""
}

// ========================= GETTERS =========================

func (s *Storage) Endpoint() string { return s.loc.Endpoint }
func (s *Storage) ID() int64 { return s.loc.ID }
func (s *Storage) Locale() string { return s.loc.Locale }
func (s *Storage) Website() int64 { return s.loc.WebsiteID }
func (s *Storage) Marketplace() int64 { return s.loc.MarketplaceID }
func (s *Storage) List() int64 { return s.loc.ListID }
func (s *Storage) Extension() string { return Extension }

// Locator returns a copy of the current state.
func (s *Storage) Locator() Locator {
	return s.loc
}

// StorageURL returns the storage url without trailing "/", or "" when unset.
func (s *Storage) StorageURL() string {
	return trimStorageURL(s.storageURL)
}

func (s *Storage) HasRootPathEndpoint() bool {
	return s.loc.IsRootPath()
}

// BuildURL derives the resource url from the current state. It does not
// modify the builder.
func (s *Storage) BuildURL() string {
	return s.loc.URL(s.storageURL)
}
