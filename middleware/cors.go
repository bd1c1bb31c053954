// Package middleware wires cross-cutting request handling for the API.
package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the local frontend dev servers to call the API.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	return cors.New(cfg)
}
