package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgSignedUp         = "Compte créé. Consultez vos emails pour confirmer votre adresse."
	msgVerificationSent = "Si un compte non confirmé existe pour cette adresse, un nouvel email a été envoyé."
)

type AuthHandler struct {
	cmds        commands.AuthCommands
	users       queries.UserQueries
	jar         *cookie.Jar
	redirectURL string
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jar *cookie.Jar, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:        cmds,
		users:       users,
		jar:         jar,
		redirectURL: cfg.Club.RedirectURL,
	}
}

// @Summary Sign up
// @Description Create an unconfirmed member account and queue the confirmation email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation), httperr.MsgInvalidRequest)
		return
	}

	identity, err := h.cmds.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}

	u, err := resdto.FromIdentity(*identity)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusCreated, resdto.SignUpResponse{Message: msgSignedUp, User: u})
}

// @Summary User login
// @Description Login with email and password. Sets the session cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation), httperr.MsgInvalidRequest)
		return
	}

	s, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}

	res, err := resdto.FromSession(s)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	h.jar.SetSession(c, s)
	c.JSON(http.StatusOK, res)
}

// @Summary Refresh session
// @Description Rotate the session using the refresh token from the body or the refresh cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := refreshTokenOf(c)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInvalidRequest)
		return
	}
	if token == "" {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	s, err := h.cmds.Refresh(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}

	res, err := resdto.FromSession(s)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	h.jar.SetSession(c, s)
	c.JSON(http.StatusOK, res)
}

// @Summary Resend confirmation email
// @Description Queue a new confirmation email. Always answers 202 so addresses cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResendVerificationRequest true "Resend request"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req reqdto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation), httperr.MsgInvalidRequest)
		return
	}

	if err := h.cmds.ResendVerification(c.Request.Context(), req.Email); err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: msgVerificationSent})
}

// @Summary Email confirmation callback
// @Description Confirm the email address with the emailed code, sign the member in and redirect
// @Tags auth
// @Param code query string true "Confirmation code"
// @Success 302 "Redirect"
// @Failure 400 {object} httperr.Response
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httperr.Abort(c, errs.ErrInvalidCode, httperr.MsgInvalidCode)
		return
	}

	s, err := h.cmds.ConfirmEmail(c.Request.Context(), code)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	h.jar.SetSession(c, s)
	c.Redirect(http.StatusFound, h.redirectURL)
}

// @Summary User logout
// @Description Revoke the current session and clear the cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	refresh, err := refreshTokenOf(c)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInvalidRequest)
		return
	}
	// The resolved session only knows the access token; the refresh token travels separately.
	signOut := *s
	if refresh != "" {
		signOut.RefreshToken = refresh
	}

	if err := h.cmds.Logout(c.Request.Context(), &signOut); err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	h.jar.Clear(c)
	c.Status(http.StatusNoContent)
}

// refreshTokenOf reads the refresh token from the optional JSON body, then from the cookie.
func refreshTokenOf(c *gin.Context) (string, error) {
	var req reqdto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if req.RefreshToken != "" {
		return req.RefreshToken, nil
	}
	return cookie.RefreshToken(c), nil
}

// @Summary Get current user
// @Description Get the profile of the signed-in member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	view, err := h.users.CurrentUser(c.Request.Context(), s)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}

	res, err := resdto.FromCurrentUserView(view)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, res)
}
