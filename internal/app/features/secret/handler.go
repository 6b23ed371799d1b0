package secret

import (
	"net/http"

	"github.com/nilsiker/portfolio/internal/app/features/errors"
	"github.com/nilsiker/portfolio/internal/app/system/navigation"
	"github.com/nilsiker/portfolio/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// Handler flips the visitor's secret flag.
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
| POST /secret                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeToggle flips the flag unconditionally and sends the visitor back to
// the page they toggled from.
func (h *Handler) ServeToggle(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.Load(r).Toggle()
	if err := h.Sessions.Save(w, r, st); err != nil {
		errors.RenderServerError(w, r, h.Log, "secret toggle failed", err)
		return
	}

	h.Log.Info("secret toggled", zap.Bool("secret", st.Secret))
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.PageBackURL), http.StatusSeeOther)
}
