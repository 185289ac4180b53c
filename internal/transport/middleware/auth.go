package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/plantwater-backend/pkg/ctxutil"
)

type credentialsVerifier interface {
	Verify(user, password string) bool
}

// BasicAuth requires HTTP Basic credentials accepted by verifier. A nil
// verifier disables the check so local setups can run without a password.
// The authenticated user name is stored in the context as the editor.
func BasicAuth(verifier credentialsVerifier, realm string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !verifier.Verify(user, pass) {
				logger.WarnContext(r.Context(), "auth failed",
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("user", user),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithEditor(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
