// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// ReturnParam is the query or form key that carries the page to go back to.
const ReturnParam = "return"

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// ExcludedSubpaths are prefixes to reject (e.g., "/secret", "/counter/").
	// These prevent redirect loops back to action endpoints.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// PageBackURL sends a state-changing POST back to the page it came from.
var PageBackURL = BackURLOptions{
	ExcludedSubpaths: []string{"/secret", "/counter/", "/health", "/static/"},
	Fallback:         "/",
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks the query parameter first and then the form value, rejects
// anything that is not a local path, and rejects excluded subpaths.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	fallback := opts.Fallback
	if fallback == "" {
		fallback = "/"
	}

	ret := strings.TrimSpace(query.Get(r, ReturnParam))
	if ret == "" {
		ret = strings.TrimSpace(r.FormValue(ReturnParam))
	}
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return fallback
	}

	ret = urlutil.SafeReturn(ret, "", fallback)
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.HasPrefix(ret, excluded) {
			return fallback
		}
	}
	return ret
}

// WithReturn appends the return parameter for path to action.
func WithReturn(action, path string) string {
	if path == "" {
		return action
	}
	sep := "?"
	if strings.Contains(action, "?") {
		sep = "&"
	}
	return action + sep + ReturnParam + "=" + url.QueryEscape(path)
}
