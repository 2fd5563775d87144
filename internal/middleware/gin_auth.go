package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinResolveSession adapts the net/http session-resolution middleware
// to Gin. Auth decisions stay session-based and provider-agnostic.
func GinResolveSession(auth *AuthMiddleware) gin.HandlerFunc {
	return bridge(auth.ResolveSession)
}

// GinRequireAuth adapts the net/http auth gate to Gin.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return bridge(auth.RequireAuth)
}

func bridge(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		handler := mw(next)
		handler.ServeHTTP(c.Writer, c.Request)

		// If the middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
