package http

import (
	"github.com/gin-gonic/gin"

	pkgLog "dayflow/pkg/log"
)

// Handler is the public interface for the shopping HTTP delivery layer.
type Handler interface {
	ParseList(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates a new HTTP handler for the shopping domain.
func New(l pkgLog.Logger) *handler {
	return &handler{l: l}
}
