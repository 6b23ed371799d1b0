package site

import (
	"bytes"
	"net/http"

	"github.com/nilsiker/portfolio/internal/app/features/errors"
	"github.com/nilsiker/portfolio/internal/app/pages"
	"github.com/nilsiker/portfolio/internal/app/system/route"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// Handler serves every page of the site.
type Handler struct {
	Sessions *viewstate.Manager
	Title    string
	Log      *zap.Logger
}

func NewHandler(sessions *viewstate.Manager, title string, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Title:    title,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /*  (/, /projects, /contributions, /about, /blog, /404, anything else)   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePage resolves the request path with route.Parse and renders it.
// Paths no route claims get the NotFound page with status 404; /404 itself
// answers 200.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	rt := route.Parse(r.URL.Path)

	status := http.StatusOK
	if rt == route.NotFound && route.Clean(r.URL.Path) != rt.Path() {
		status = http.StatusNotFound
	}
	h.render(w, r, rt, status)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, rt route.Route, status int) {
	page := pages.App(pages.AppProps{
		Title: h.Title,
		State: viewstate.FromRequest(r),
		Route: rt,
		Path:  r.URL.Path,
	})

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		errors.RenderServerError(w, r, h.Log, "render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.Log.Warn("write page", zap.Error(err), zap.String("route", rt.String()))
	}
}
