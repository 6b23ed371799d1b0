package route_test

import (
	"testing"

	"github.com/nilsiker/portfolio/internal/app/system/route"
)

func TestParse_KnownPaths(t *testing.T) {
	tests := []struct {
		path string
		want route.Route
	}{
		{"/", route.Home},
		{"", route.Home},
		{"/projects", route.Projects},
		{"/projects/", route.Projects},
		{"/contributions", route.Contributions},
		{"/about", route.About},
		{"/blog", route.Blog},
		{"/404", route.NotFound},
	}

	for _, tt := range tests {
		if got := route.Parse(tt.path); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParse_UnknownPathsResolveToNotFound(t *testing.T) {
	for _, p := range []string{"/unknown-path", "/projects/contour", "/About", "/404/x"} {
		if got := route.Parse(p); got != route.NotFound {
			t.Errorf("Parse(%q) = %v, want NotFound", p, got)
		}
	}
}

func TestPath_RoundTrips(t *testing.T) {
	for _, rt := range route.All() {
		if got := route.Parse(rt.Path()); got != rt {
			t.Errorf("Parse(%q) = %v, want %v", rt.Path(), got, rt)
		}
	}
}

func TestPath_OutOfRangeFallsBackToNotFound(t *testing.T) {
	rt := route.Route(99)
	if rt.Path() != "/404" {
		t.Errorf("Path() = %q, want /404", rt.Path())
	}
	if rt.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", rt.String())
	}
}

func TestClean(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "/"},
		{"/", "/"},
		{"/about/", "/about"},
		{"/404//", "/404"},
		{"/x/y", "/x/y"},
	}
	for _, tt := range tests {
		if got := route.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
