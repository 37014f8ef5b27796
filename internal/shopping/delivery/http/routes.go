package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	shopping := rg.Group("/shopping")
	{
		shopping.POST("/parse", h.ParseList)
	}
}
