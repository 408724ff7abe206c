package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// Authenticate validates bearer tokens and injects the caller identity into
// the request context.
type Authenticate struct {
	resolver       model.IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver model.IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		resolver:       resolver,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, resolves the identity and passes
// the request on with the identity set in context. Requests without a valid
// token are rejected with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			m.unauthorized(w, "missing authorization token")
			return
		}

		identity, err := m.resolver.Resolve(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"error", err.Error())
			m.unauthorized(w, "invalid authorization token")
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
