package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns the open CORS policy for the sync endpoint: any origin may
// read and write its own user's blob, the user id travels in a custom
// header.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"X-User-Id", "Content-Type"},
		MaxAge:         86400,
	}).Handler
}
