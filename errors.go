package main

import (
	"fmt"
	"net/http"
)

// APIError reports a non-success response from the RAWG API.
type APIError struct {
	StatusCode int
	Slug       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("RAWG API returned HTTP %d for %q: %s", e.StatusCode, e.Slug, e.Detail)
	}
	return fmt.Sprintf("RAWG API returned HTTP %d for %q", e.StatusCode, e.Slug)
}

// NotFound reports whether the catalog has no game for the slug.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AuthFailed reports whether the API rejected the key.
func (e *APIError) AuthFailed() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DownloadError reports a failed cover image download. It is non-fatal: the
// note is still written, without the cover reference.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("downloading %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ParseError reports unusable front matter in an existing note. It is
// non-fatal: the importer proceeds with default field values.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing front matter of %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failed note write. Notes are written to a temp file
// and renamed into place, so any existing note is intact when this returns.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
