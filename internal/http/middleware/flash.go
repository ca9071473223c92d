package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/flash"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

const CtxKeyFlash = "flash"

// FlashMiddleware reads the flash cookie into the context and clears it, so
// messages are shown exactly once.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if fs, err := codec.Decode(v); err == nil {
				c.Set(CtxKeyFlash, fs)
			}
			// cleared even when invalid
			clearCookie(c, codec.CookieName, codec.Secure)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) []view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if fs, ok := v.([]view.Flash); ok {
			return fs
		}
	}
	return nil
}

func SetFlashCookie(c *gin.Context, codec *flash.Codec, fs ...view.Flash) {
	if len(fs) == 0 {
		return
	}
	val, err := codec.Encode(fs)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, codec.CookieMaxAge(), "/", "", codec.Secure, true)
}

func clearCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
