package handler

import (
	"github.com/deppfellow/mongodb-errors/internal/repository"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/deppfellow/mongodb-errors/internal/service"
	"github.com/labstack/echo/v4"
)

// CollectionResponse names a created collection or index.
type CollectionResponse struct {
	Name string `json:"name"`
}

// CollectionHandler exposes collection and index administration.
//
// Driver errors from the service are returned unchanged and turned into
// API errors by the MongoErrors middleware.
type CollectionHandler struct {
	Handler
	collections *service.CollectionService
}

func NewCollectionHandler(s *server.Server, collections *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		Handler:     NewHandler(s),
		collections: collections,
	}
}

func (h *CollectionHandler) List(c echo.Context, _ *EmptyRequest) ([]repository.CollectionInfo, error) {
	return h.collections.List(c.Request().Context())
}

func (h *CollectionHandler) Create(c echo.Context, req *CreateCollectionRequest) (*CollectionResponse, error) {
	if err := h.collections.Create(c.Request().Context(), req.Name, req.Capped, req.SizeBytes); err != nil {
		return nil, err
	}
	return &CollectionResponse{Name: req.Name}, nil
}

func (h *CollectionHandler) Drop(c echo.Context, req *CollectionRequest) error {
	return h.collections.Drop(c.Request().Context(), req.Name)
}

func (h *CollectionHandler) CreateIndex(c echo.Context, req *CreateIndexRequest) (*CollectionResponse, error) {
	name, err := h.collections.CreateIndex(c.Request().Context(), req.Collection, req.Spec())
	if err != nil {
		return nil, err
	}
	return &CollectionResponse{Name: name}, nil
}

func (h *CollectionHandler) DropIndex(c echo.Context, req *IndexRequest) error {
	return h.collections.DropIndex(c.Request().Context(), req.Collection, req.Index)
}
