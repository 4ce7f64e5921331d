// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request IDs, request logging, CORS, panic recovery,
// and turning MongoDB driver errors into clean API errors
package middleware
