package cookie

import (
	"net/http"
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// Jar writes and reads the session cookies with one set of attributes.
type Jar struct {
	cfg        config.CookieConfig
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJar(cfg config.CookieConfig, jwtCfg config.JWTConfig) *Jar {
	return &Jar{cfg: cfg, accessTTL: jwtCfg.Duration, refreshTTL: jwtCfg.RefreshDuration}
}

func (j *Jar) SetSession(c *gin.Context, s *auth.Session) {
	j.set(c, AccessTokenCookieName, s.AccessToken, int(j.accessTTL.Seconds()))
	if s.RefreshToken != "" {
		j.set(c, RefreshTokenCookieName, s.RefreshToken, int(j.refreshTTL.Seconds()))
	}
}

func (j *Jar) Clear(c *gin.Context) {
	j.set(c, AccessTokenCookieName, "", -1)
	j.set(c, RefreshTokenCookieName, "", -1)
}

func (j *Jar) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", j.cfg.Domain, j.cfg.Secure, true)
}

// AccessToken reads the access token from its cookie, then from the Authorization header.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	return auth.BearerToken(c.GetHeader("Authorization"))
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
