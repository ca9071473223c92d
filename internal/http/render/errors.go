package render

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/templates/pages"
)

func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	Component(c, status, pages.Error(Nav(c), status, msg, requestID, middleware.GetFlash(c)))
}
