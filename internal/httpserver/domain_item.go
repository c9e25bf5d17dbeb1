package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "catalog/internal/item/delivery/http"
	itemRepo "catalog/internal/item/repository/mongodb"
	itemUC "catalog/internal/item/usecase"
)

// setupItemDomain wires repository → usecase → handler for items and
// registers the routes on rg (the /items resource root).
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository
	repo := itemRepo.New(srv.mongoDB, srv.itemCollection, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes
	itemHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Item domain registered at %s", rg.BasePath())
	return nil
}
