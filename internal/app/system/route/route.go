// Package route defines the closed set of navigable pages and maps URL
// paths onto them.
package route

import "strings"

// Route identifies one navigable page.
type Route int

const (
	Home Route = iota
	Projects
	Contributions
	About
	// Blog is kept for old links; it renders the under-construction card.
	Blog
	NotFound
)

var paths = map[Route]string{
	Home:          "/",
	Projects:      "/projects",
	Contributions: "/contributions",
	About:         "/about",
	Blog:          "/blog",
	NotFound:      "/404",
}

var names = map[Route]string{
	Home:          "home",
	Projects:      "projects",
	Contributions: "contributions",
	About:         "about",
	Blog:          "blog",
	NotFound:      "not_found",
}

// All returns every route in declaration order.
func All() []Route {
	return []Route{Home, Projects, Contributions, About, Blog, NotFound}
}

// Clean normalizes a request path the way Parse compares it: trailing
// slashes dropped, empty meaning "/".
func Clean(p string) string {
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		p = "/"
	}
	return p
}

// Parse resolves a URL path to its route. A trailing slash is ignored and
// anything unrecognised resolves to NotFound.
func Parse(p string) Route {
	p = Clean(p)
	for _, rt := range All() {
		if paths[rt] == p {
			return rt
		}
	}
	return NotFound
}

// Path returns the canonical URL path for the route.
func (r Route) Path() string {
	if p, ok := paths[r]; ok {
		return p
	}
	return paths[NotFound]
}

func (r Route) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return "unknown"
}
