package middleware

import (
	"net/http"
	"sync"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// TokenHeader carries the shared write token. A non-standard header makes
// browsers send a preflight first, which AuthCheck answers.
const TokenHeader = "X-FIT-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenChecker interface {
	Check(token string) bool
}

// BcryptTokenChecker accepts the token matching a bcrypt hash.
// Accepted tokens are remembered so bcrypt runs once per distinct token.
type BcryptTokenChecker struct {
	hash     string
	mutex    sync.RWMutex
	accepted map[string]bool
}

func NewBcryptTokenChecker(hash string) *BcryptTokenChecker {
	return &BcryptTokenChecker{
		hash:     hash,
		accepted: make(map[string]bool),
	}
}

func (c *BcryptTokenChecker) Check(token string) bool {
	c.mutex.RLock()
	ok := c.accepted[token]
	c.mutex.RUnlock()
	if ok {
		return true
	}

	if !pkg.CheckTokenHash(token, c.hash) {
		return false
	}

	c.mutex.Lock()
	c.accepted[token] = true
	c.mutex.Unlock()
	return true
}

type AuthMiddlewareHandler struct {
	checker  tokenChecker
	required bool
}

// NewAuthMiddlewareHandler guards mutating requests with the write token.
// With required false every request passes.
func NewAuthMiddlewareHandler(checker tokenChecker, required bool) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker:  checker,
		required: required,
	}
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if !h.required || isReadOnly(r.Method) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s %s", r.Method, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.checker.Check(authToken) {
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s %s", r.Method, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
