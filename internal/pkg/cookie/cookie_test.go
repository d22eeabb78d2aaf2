//go:build unit

package cookie_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJar(sameSite string) *cookie.Jar {
	return cookie.NewJar(
		config.CookieConfig{SameSite: sameSite, Secure: true, Domain: "club.example"},
		config.JWTConfig{Duration: 15 * time.Minute, RefreshDuration: 24 * time.Hour},
	)
}

func responseCookies(w *nethttptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestJarSetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes both tokens with their lifetimes", func(t *testing.T) {
		w := nethttptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = nethttptest.NewRequest(http.MethodPost, "/", nil)

		newJar("Strict").SetSession(c, &auth.Session{AccessToken: "a", RefreshToken: "r"})

		got := responseCookies(w)
		require.Contains(t, got, cookie.AccessTokenCookieName)
		require.Contains(t, got, cookie.RefreshTokenCookieName)

		access := got[cookie.AccessTokenCookieName]
		assert.Equal(t, "a", access.Value)
		assert.Equal(t, 900, access.MaxAge)
		assert.True(t, access.HttpOnly)
		assert.True(t, access.Secure)
		assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
		assert.Equal(t, "/", access.Path)

		assert.Equal(t, 86400, got[cookie.RefreshTokenCookieName].MaxAge)
	})

	t.Run("keeps the refresh cookie when the session has none", func(t *testing.T) {
		w := nethttptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = nethttptest.NewRequest(http.MethodPost, "/", nil)

		newJar("Lax").SetSession(c, &auth.Session{AccessToken: "a"})

		got := responseCookies(w)
		assert.Contains(t, got, cookie.AccessTokenCookieName)
		assert.NotContains(t, got, cookie.RefreshTokenCookieName)
	})
}

func TestJarClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = nethttptest.NewRequest(http.MethodPost, "/", nil)

	newJar("Lax").Clear(c)

	for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
		got := responseCookies(w)[name]
		require.NotNil(t, got, name)
		assert.Empty(t, got.Value)
		assert.Less(t, got.MaxAge, 0)
	}
}

func TestAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie", cookie: "from-cookie", want: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", want: "from-header"},
		{name: "cookie wins", cookie: "from-cookie", header: "Bearer from-header", want: "from-cookie"},
		{name: "other scheme", header: "Basic abc", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
			req := nethttptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c.Request = req

			assert.Equal(t, tt.want, cookie.AccessToken(c))
		})
	}
}
