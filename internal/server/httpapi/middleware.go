package httpapi

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/petarea/petarea/internal/server/auth"
)

type ctxKey string

// userIDKey is the single source of truth for the acting identity. Every
// protected handler reads it through userIDFrom; request bodies are never
// trusted to name a user.
const userIDKey ctxKey = "userID"

// protect verifies the bearer token before letting the request through.
// The token is the raw Authorization header value, not "Bearer "-prefixed —
// that is what the existing clients send.
func (s *Server) protect(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := r.Header.Get("Authorization")
		if token == "" {
			http.Error(w, "Acesso negado. Nenhum token fornecido.", http.StatusUnauthorized)
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			http.Error(w, "Token inválido.", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		h(w, r.WithContext(ctx), ps)
	}
}

// userIDFrom returns the authenticated user id attached by protect.
func userIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
