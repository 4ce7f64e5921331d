// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/mongodb-errors/internal/handler"
	"github.com/deppfellow/mongodb-errors/internal/middleware"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with global middleware and every route.
//
// Middleware order matters:
//  1. RequestID first, so every later log line can carry it
//  2. ContextEnhancer builds the request-scoped logger from it
//  3. RequestLogger sees the final (decoded) error returned below it
//  4. Recover + Secure + CORS
//  5. MongoErrors closest to the handlers, decoding driver errors
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	// Errors raised outside the route chain (404s, middleware errors) are
	// decoded here before rendering.
	router.HTTPErrorHandler = mws.MongoErrors.ErrorHandler(mws.Global.GlobalErrorHandler)

	router.Use(
		middleware.RequestID(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.Secure(),
		mws.Global.CORS(),
		mws.MongoErrors.Decode(),
	)

	registerSystemRoutes(router, s, h)

	v1 := router.Group("/api/v1")
	registerCollectionRoutes(v1, h)
	registerServerRoutes(v1, h)

	return router
}
