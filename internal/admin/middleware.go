package admin

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RequireKey gates admin routes behind the X-Admin-Key header. The header
// must equal the configured key exactly; an empty configured key never
// matches, so deployments without one have no admin access at all.
func RequireKey(key string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Admin-Key")
			if key == "" || provided != key {
				logger.Warn("admin key mismatch", zap.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				if err := json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "Unauthorized",
				}); err != nil {
					logger.Error("failed to encode response", zap.Error(err))
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
