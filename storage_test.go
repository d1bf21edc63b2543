package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type middleware func(http.HandlerFunc) http.HandlerFunc

// === MIDDLEWAREs ===
func chain(f http.HandlerFunc, middlewares ...middleware) http.HandlerFunc {
	for _, m := range slices.Backward(middlewares) {
		f = m(f)
	}
	return f
}

func method(method string) middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			next(w, r)
		}
	}
}

func acceptJSON() middleware {
	return func(f http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Accept") != "application/json" {
				w.WriteHeader(http.StatusNotAcceptable)
				return
			}
			f(w, r)
		}
	}
}

// === HELPERs ===

// newStorageServer serves documents keyed by path. Unknown paths are 404.
func newStorageServer(t *testing.T, documents map[string]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(chain(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := documents[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}, method(http.MethodGet), acceptJSON()))
	t.Cleanup(ts.Close)
	return ts
}

// recordingClient answers every request with body and remembers the urls.
type recordingClient struct {
	body string
	urls []string
}

func (c *recordingClient) Do(req *http.Request) (*http.Response, error) {
	c.urls = append(c.urls, req.URL.String())
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(c.body)),
		Request:    req,
	}, nil
}

type failingClient struct{ err error }

func (c failingClient) Do(*http.Request) (*http.Response, error) { return nil, c.err }

// === TESTs ===

func TestFind(t *testing.T) {
	ts := newStorageServer(t, map[string]string{
		"/contents/1.json": `{"data": []}`,
	})

	var res map[string]any
	err := New(ts.URL).SetEndpoint("contents").Find(context.Background(), 1, &res)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := res["data"]; !ok {
		t.Errorf("Expected data key, got %v", res)
	}
}

func TestGet(t *testing.T) {
	ts := newStorageServer(t, map[string]string{
		"/websites/1/routes/pt.json": `{"home": "/pt"}`,
	})

	routes, err := Fetch[map[string]string](context.Background(), New(ts.URL).SetWebsite(1).SetLocale("pt").SetEndpoint("routes"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if routes["home"] != "/pt" {
		t.Errorf("Expected /pt, got %s", routes["home"])
	}
}

func TestFetchID(t *testing.T) {
	ts := newStorageServer(t, map[string]string{
		"/contents/7.json": `[1, 2, 3]`,
	})

	res, err := FetchID[[]int](context.Background(), New(ts.URL).SetEndpoint("contents"), 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res)
}

func TestNotFound(t *testing.T) {
	ts := newStorageServer(t, nil)

	var res any
	err := New(ts.URL).SetEndpoint("contents").Find(context.Background(), 1, &res)
	if err == nil {
		t.Fatalf("Expected error, got nil")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected *HTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected code %d, got %d", http.StatusNotFound, httpErr.StatusCode)
	}
	if httpErr.URL != ts.URL+"/contents/1.json" {
		t.Errorf("Unexpected url %s", httpErr.URL)
	}
	if httpErr.Details == "" {
		t.Errorf("Expected details for 404")
	}
	if errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Fetch errors should not be ErrResourceNotFound")
	}
}

func TestMalformedJSON(t *testing.T) {
	ts := newStorageServer(t, map[string]string{
		"/contents/1.json": `{"data": [`,
	})

	var res any
	err := New(ts.URL).SetEndpoint("contents").Find(context.Background(), 1, &res)
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("Expected *json.SyntaxError, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	boom := errors.New("connection refused")

	var res any
	err := New("http://test", WithHTTPClient(failingClient{err: boom})).SetEndpoint("contents").Get(context.Background(), &res)
	assert.ErrorIs(t, err, boom)
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, "application/json", New("").Headers().Get("Accept"))
}

func TestResourceNotFound(t *testing.T) {
	assert.ErrorIs(t, New("").ResourceNotFound(), ErrResourceNotFound)
}

func TestRequestURLWithoutStorageURL(t *testing.T) {
	t.Setenv(StorageURLEnv, "")
	client := &recordingClient{body: `{"data": []}`}

	var res map[string]any
	err := New("", WithHTTPClient(client)).SetEndpoint("contents").Find(context.Background(), 1, &res)
	require.NoError(t, err)
	assert.Equal(t, []string{"/contents/1.json"}, client.urls)
	assert.Equal(t, map[string]any{"data": []any{}}, res)
}
