package middleware

import (
	"errors"
	"log/slog"

	"court-booking/internal/domain/auth"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	accessor *session.Accessor
}

const ctxSessionKey = "session"

func NewAuthMiddleware(accessor *session.Accessor) *AuthMiddleware {
	return &AuthMiddleware{
		accessor: accessor,
	}
}

// RequireAuth resolves the session from the access token cookie or bearer header and aborts with
// 401 when there is none. A store outage during the lookup is a 503, not a sign-in prompt.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.accessor.Resolve(c.Request.Context(), cookie.AccessToken(c))
		if err != nil {
			if errors.Is(err, errs.ErrStoreUnavailable) {
				slog.Warn("session store unavailable", "error", err.Error(), "path", c.Request.URL.Path)
				httperr.Abort(c, err, httperr.MsgServiceUnavailable)
				return
			}
			slog.Debug("session resolution failed", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.Abort(c, errs.Mark(err, errs.ErrAuthRequired), httperr.MsgAuthRequired)
			return
		}

		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

// OptionalAuth attaches the session when the request carries a valid token and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AccessToken(c)
		if token == "" {
			c.Next()
			return
		}
		if s, err := m.accessor.Resolve(c.Request.Context(), token); err == nil {
			c.Set(ctxSessionKey, s)
		}
		c.Next()
	}
}

// GetSession returns the session attached by RequireAuth or OptionalAuth.
func GetSession(c *gin.Context) (*auth.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*auth.Session)
	return s, ok && s != nil
}

// SetSession attaches s to the request context. Handler tests use it in place of RequireAuth.
func SetSession(c *gin.Context, s *auth.Session) {
	c.Set(ctxSessionKey, s)
}
