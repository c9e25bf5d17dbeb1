package http

import (
	"github.com/gin-gonic/gin"

	"catalog/internal/item"
	"catalog/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
