package middleware

import (
	"net/http"

	"lab-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKey only lets requests through whose X-Admin-Key matches keyHash
// (a bcrypt hash). With no hash configured every admin request is refused.
func AdminKey(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if keyHash == "" {
				logger.Error("Admin request refused: ADMIN_KEY_HASH is not configured",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access is disabled")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Warn("Admin check: invalid key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
