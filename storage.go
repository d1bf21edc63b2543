package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Headers returns the headers sent with every request.
func (s *Storage) Headers() http.Header {
	return http.Header{
		"Accept": []string{"application/json"},
	}
}

// Get requests [Storage.BuildURL] and decodes the json body into out.
func (s *Storage) Get(ctx context.Context, out any) error {
	return s.httpGetRequest(ctx, s.BuildURL(), out)
}

// Find sets id, then behaves like [Storage.Get].
func (s *Storage) Find(ctx context.Context, id int64, out any) error {
	return s.SetID(id).Get(ctx, out)
}

// ResourceNotFound always returns [ErrResourceNotFound]. Callers use it to
// signal a missing document explicitly; fetches never return it on their own.
func (s *Storage) ResourceNotFound() error {
	return ErrResourceNotFound
}

// Fetch is [Storage.Get] returning the decoded value.
//
// Usage:
//
//	routes, err := storage.Fetch[map[string]any](ctx, builder.SetEndpoint("routes"))
func Fetch[T any](ctx context.Context, s *Storage) (res T, err error) {
	err = s.Get(ctx, &res)
	return
}

// FetchID is [Storage.Find] returning the decoded value.
func FetchID[T any](ctx context.Context, s *Storage, id int64) (res T, err error) {
	err = s.Find(ctx, id, &res)
	return
}

func (s *Storage) httpGetRequest(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request %s: %w", url, err)
	}
	req.Header = s.Headers()
	s.logger.Debug(fmt.Sprintf("GET %s", url))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			Method:     http.MethodGet,
			URL:        url,
			StatusCode: resp.StatusCode,
			Details:    httpStatusMap[resp.StatusCode],
		}
		s.logger.Error(httpErr.Error())
		return httpErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
