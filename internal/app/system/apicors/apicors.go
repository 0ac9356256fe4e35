// Package apicors provides permissive CORS middleware for the JSON API.
//
// The API is cookie-free, so there are no credentials to protect and any
// origin may call it: Access-Control-Allow-Origin is "*" and credentials are
// never allowed.
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware for the API routes.
//
// It allows any origin, the common API methods and headers, and answers
// preflight OPTIONS requests directly.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
