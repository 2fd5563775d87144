package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/logger"
	"github.com/pedroQM1/MrService/internal/middleware"
	"github.com/pedroQM1/MrService/internal/session"
)

type logoutForm struct {
	LogoutID string `form:"logoutId"`
}

// LogoutGet either terminates immediately or renders the confirmation
// prompt, depending on the caller's session and the logout context.
func (h *Handler) LogoutGet(c *gin.Context) {
	logoutID := c.Query("logoutId")

	// no active session: nothing to confirm, terminate with whatever
	// correlation id the caller supplied
	if _, ok := middleware.SessionFromContext(c.Request.Context()); !ok {
		h.terminateSession(c, logoutID)
		return
	}

	lctx, err := h.engine.ResolveLogoutContext(c.Request.Context(), logoutID)
	if err == nil && lctx != nil && !lctx.ShowSignoutPrompt {
		h.terminateSession(c, logoutID)
		return
	}

	c.HTML(http.StatusOK, "logout", logoutView{LogoutID: logoutID})
}

// LogoutPost is the confirmed termination step.
func (h *Handler) LogoutPost(c *gin.Context) {
	var form logoutForm
	_ = c.ShouldBind(&form)
	h.terminateSession(c, form.LogoutID)
}

// terminateSession runs the logout cascade: best-effort federated
// sign-out, unconditional local clearing, then the post-logout
// redirect resolved from the protocol engine.
func (h *Handler) terminateSession(c *gin.Context, logoutID string) {
	ctx := c.Request.Context()
	sess, _ := middleware.SessionFromContext(ctx)

	if sess != nil && sess.Federated() {
		if logoutID == "" {
			id, err := h.engine.CreateLogoutContext(ctx)
			if err != nil {
				logger.Error("failed to create logout context", map[string]any{
					"error": err.Error(),
				})
			} else {
				logoutID = id
			}
		}

		// callback re-enters this same termination step once the
		// provider redirects back
		callbackURL := "/account/logout?logoutId=" + url.QueryEscape(logoutID)

		t, err := h.terminators.Get(sess.IdentityProvider)
		if err != nil {
			logger.Warn("no terminator for federated scheme", map[string]any{
				"scheme": sess.IdentityProvider,
			})
		} else if err := t.SignOut(ctx, logoutID, callbackURL); err != nil {
			// some federated providers reject programmatic sign-out;
			// never let that stop the local logout
			logger.Error("external sign-out failed", map[string]any{
				"scheme": sess.IdentityProvider,
				"error":  err.Error(),
			})
		}
	}

	// unconditionally clear the local and generic schemes
	h.issuer.ClearLocalSession(ctx, c.Writer, c.Request)
	h.issuer.ClearSchemeSession(ctx, c.Writer, c.Request, session.LocalIdentityProvider)

	// reset the principal so rendering on this request sees anonymous
	c.Request = c.Request.WithContext(middleware.WithAnonymous(ctx))

	lctx, err := h.engine.ResolveLogoutContext(c.Request.Context(), logoutID)
	if err != nil || lctx == nil || lctx.PostLogoutRedirectURI == "" {
		logger.Error("no post-logout redirect target", map[string]any{
			"logout_id": logoutID,
		})
		c.HTML(http.StatusInternalServerError, "error", errorView{Message: "post-logout redirect is not configured"})
		return
	}

	c.Redirect(http.StatusFound, lctx.PostLogoutRedirectURI)
}
