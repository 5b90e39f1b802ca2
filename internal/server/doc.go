// Package server implements the HTTP server using Echo framework.
//
// Routes: auth (register/login/me), youtube (search/channel/video/related),
// user lists (favorites/see-later), plus health and metrics endpoints.
// Handlers split by domain: handlers_auth.go, handlers_youtube.go,
// handlers_lists.go, handlers_health.go. Protected routes use the bearer
// middleware in middleware.go.
package server
