package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
)

const (
	ctxKeyCSRF = "csrf_token"

	CSRFField  = "csrf_token"
	CSRFHeader = "X-CSRF-Token"
)

type CSRFCfg struct {
	CookieName string
	Secure     bool
}

// CSRF issues a per-browser token in a cookie and requires unsafe requests to
// echo it back in the csrf_token form field or the X-CSRF-Token header.
func CSRF(cfg CSRFCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || len(token) < 32 {
			token, err = newCSRFToken()
			if err != nil {
				Fail(c, apperr.Wrap(err))
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, token, 0, "/", "", cfg.Secure, true)
			// a fresh cookie cannot match anything the client sent
			if unsafeMethod(c.Request.Method) {
				Fail(c, apperr.New(apperr.Forbidden, "Your session expired. Please reload the page and try again."))
				return
			}
		}
		c.Set(ctxKeyCSRF, token)

		if unsafeMethod(c.Request.Method) {
			sent := c.GetHeader(CSRFHeader)
			if sent == "" {
				sent = c.PostForm(CSRFField)
			}
			if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
				Fail(c, apperr.New(apperr.Forbidden, "Your session expired. Please reload the page and try again."))
				return
			}
		}
		c.Next()
	}
}

func GetCSRFToken(c *gin.Context) string {
	return c.GetString(ctxKeyCSRF)
}

func unsafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func newCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
