package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/flash"
	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	RedirectWithNotices(c, codec, location, []view.Flash{{Kind: kind, Message: msg}})
}

// RedirectWithNotices carries every message raised by an action across the
// redirect in a single cookie.
func RedirectWithNotices(c *gin.Context, codec *flash.Codec, location string, fs []view.Flash) {
	middleware.SetFlashCookie(c, codec, fs...)
	c.Redirect(http.StatusFound, location)
}

func Nav(c *gin.Context) view.Nav {
	nav := view.Nav{CSRFToken: middleware.GetCSRFToken(c)}
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return nav
	}
	nav.UserName = u.Name
	if nav.UserName == "" {
		nav.UserName = u.Email
	}
	nav.LoggedIn = true
	nav.IsAdmin = u.IsAdmin()
	return nav
}
