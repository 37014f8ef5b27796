package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route runs behind the owner-scope middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Owner())
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("/suggest", h.Suggest)
		tasks.POST("", h.Create)
		tasks.POST("/bulk", h.CreateBulk)
		tasks.GET("", h.List)
		tasks.GET("/export", h.ExportCSV)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
