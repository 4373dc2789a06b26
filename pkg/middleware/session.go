package middleware

import (
	"net/http"

	"lab-booking/internal/session"

	"go.uber.org/zap"
)

// SessionHeader carries the cart session id in both directions.
const SessionHeader = "X-Cart-Session"

// CartSession resolves the caller's cart session, creating one when the
// header is missing or no longer known, and echoes its id back.
func CartSession(store *session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SessionHeader)

			sess, created := store.GetOrCreate(raw)
			if created && raw != "" {
				logger.Debug("Unknown cart session replaced",
					zap.String("requested", raw),
					zap.String("session_id", sess.ID.String()),
				)
			}

			w.Header().Set(SessionHeader, sess.ID.String())
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}
