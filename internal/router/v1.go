package router

import (
	"net/http"

	"github.com/deppfellow/mongodb-errors/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCollectionRoutes mounts collection and index administration.
func registerCollectionRoutes(g *echo.Group, h *handler.Handlers) {
	ch := h.Collections
	collections := g.Group("/collections")

	collections.GET("", handler.Handle(ch.Handler, ch.List, http.StatusOK, &handler.EmptyRequest{}))
	collections.POST("", handler.Handle(ch.Handler, ch.Create, http.StatusCreated, &handler.CreateCollectionRequest{}))
	collections.DELETE("/:name", handler.HandleNoContent(ch.Handler, ch.Drop, http.StatusNoContent, &handler.CollectionRequest{}))

	collections.POST("/:name/indexes", handler.Handle(ch.Handler, ch.CreateIndex, http.StatusCreated, &handler.CreateIndexRequest{}))
	collections.DELETE("/:name/indexes/:index", handler.HandleNoContent(ch.Handler, ch.DropIndex, http.StatusNoContent, &handler.IndexRequest{}))
}

// registerServerRoutes mounts read-only server commands.
func registerServerRoutes(g *echo.Group, h *handler.Handlers) {
	th := h.Topology
	srv := g.Group("/server")

	srv.GET("/top", handler.Handle(th.Handler, th.Top, http.StatusOK, &handler.EmptyRequest{}))
	srv.GET("/topology", handler.Handle(th.Handler, th.Describe, http.StatusOK, &handler.EmptyRequest{}))
}
