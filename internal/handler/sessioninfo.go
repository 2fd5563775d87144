package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/middleware"
)

// SessionGet reports the caller's authenticated session. The route is
// gated, so an anonymous request never reaches this handler.
func (h *Handler) SessionGet(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sub":        sess.UserID,
		"email":      sess.Email,
		"idp":        sess.IdentityProvider,
		"persistent": sess.Persistent,
		"expires_at": sess.ExpiresAt,
	})
}
