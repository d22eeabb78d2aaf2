//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"court-booking/internal/domain/auth"
	"court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/cookie"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// WithSession stands in for RequireAuth in handler tests: requests bearing s.AccessToken get s
// attached, the others pass through without a session.
func WithSession(s *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie.AccessToken(c) == s.AccessToken {
			middleware.SetSession(c, s)
		}
		c.Next()
	}
}

// LoginUser signs in through the API and returns the session cookies.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return httptest.ExtractCookies(w)
}

// CreateAndLogin inserts a confirmed member with dbtest.DefaultPassword and signs them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (uuid.UUID, []*http.Cookie) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email)
	return userID, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
