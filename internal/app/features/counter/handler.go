package counter

import (
	"net/http"

	"github.com/nilsiker/portfolio/internal/app/features/errors"
	"github.com/nilsiker/portfolio/internal/app/system/navigation"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// Handler moves the home counter.
type Handler struct {
	Sessions *viewstate.Manager
	Log      *zap.Logger
}

func NewHandler(sessions *viewstate.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /counter/increment, /counter/decrement                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeIncrement(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, viewstate.State.Increment)
}

func (h *Handler) ServeDecrement(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, viewstate.State.Decrement)
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, step func(viewstate.State) viewstate.State) {
	st := step(h.Sessions.Load(r))
	if err := h.Sessions.Save(w, r, st); err != nil {
		errors.RenderServerError(w, r, h.Log, "counter update failed", err)
		return
	}

	h.Log.Debug("counter changed", zap.Int64("count", st.Count))
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.PageBackURL), http.StatusSeeOther)
}
