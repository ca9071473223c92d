package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/flash"
	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/render"
	"github.com/Ahmed-hessen/E-shop/internal/http/validation"
	"github.com/Ahmed-hessen/E-shop/internal/modules/users"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/pages"
)

// normalizeReturnTo only accepts site-relative paths so return_to cannot be
// used as an open redirect.
func normalizeReturnTo(s string) string {
	if s == "" || s[0] != '/' {
		return ""
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/\\") {
		return ""
	}
	if strings.Contains(s, "://") {
		return ""
	}
	return s
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (users.User, error)
}

// SessionStore issues and revokes login sessions. Create returns the opaque
// token that goes into the cookie.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthHandlers struct {
	auth     Authenticator
	sessions SessionStore
	flash    *flash.Codec
	cookie   string
	secure   bool
	ttl      time.Duration
}

func NewAuthHandlers(auth Authenticator, sessions SessionStore, flashCodec *flash.Codec, sessCfg middleware.SessionCfg) *AuthHandlers {
	return &AuthHandlers{
		auth:     auth,
		sessions: sessions,
		flash:    flashCodec,
		cookie:   sessCfg.CookieName,
		secure:   sessCfg.Secure,
		ttl:      sessCfg.TTL,
	}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandlers) LoginGet(c *gin.Context) {
	returnTo := normalizeReturnTo(c.Query("return_to"))
	render.Component(c, http.StatusOK, pages.Login(
		render.Nav(c),
		middleware.GetFlash(c),
		returnTo,
		view.LoginForm{},
		nil,
		"",
	))
}

func (h *AuthHandlers) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.Component(c, http.StatusBadRequest, pages.Login(
			render.Nav(c),
			middleware.GetFlash(c),
			returnTo,
			view.LoginForm{Email: in.Email},
			errs,
			"",
		))
		return
	}

	u, err := h.auth.Authenticate(c.Request.Context(), in.Email, in.Password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		render.Component(c, http.StatusUnauthorized, pages.Login(
			render.Nav(c),
			middleware.GetFlash(c),
			returnTo,
			view.LoginForm{Email: in.Email},
			nil,
			"Incorrect email or password.",
		))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, token, int(h.ttl.Seconds()), "/", "", h.secure, true)

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	} else if u.Role == users.RoleAdmin {
		dest = "/admin"
	}
	render.RedirectWithFlash(c, h.flash, dest, view.FlashSuccess, "Logged in.")
}

func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	if token, err := c.Cookie(h.cookie); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}
	c.SetCookie(h.cookie, "", -1, "/", "", h.secure, true)

	render.RedirectWithFlash(c, h.flash, "/", view.FlashInfo, "Logged out.")
}
