package viewstate

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	secretKey = "secret"
	countKey  = "count"
)

// Manager reads and writes State through a gorilla cookie store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing cookies with sessionKey.
//
// secure marks cookies Secure and is meant for production over HTTPS. In
// local dev over http://localhost use secure=false so browsers keep them.
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("view state store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Load decodes the state from the request cookie. A missing, expired or
// tampered cookie yields the zero State.
func (m *Manager) Load(r *http.Request) State {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Debug("discarding unreadable view state", zap.Error(err))
		return State{}
	}

	var st State
	st.Secret, _ = sess.Values[secretKey].(bool)
	st.Count, _ = sess.Values[countKey].(int64)
	return st
}

// Save writes st to the response cookie. It must run before the response
// body is written.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, st State) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// Get still hands back a fresh session alongside a decode error.
		m.log.Debug("replacing unreadable view state", zap.Error(err))
	}
	sess.Values[secretKey] = st.Secret
	sess.Values[countKey] = st.Count
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// LoadState injects the visitor's State into the request context so
// handlers can read it with FromRequest.
func (m *Manager) LoadState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := m.Load(r)
		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), st)))
	})
}
