package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/interaction"
	"github.com/pedroQM1/MrService/internal/logger"
	"github.com/pedroQM1/MrService/internal/session"
)

// loginErrorMessage is the one message shown for every credential
// failure. Unknown user and wrong password must stay indistinguishable.
const loginErrorMessage = "Invalid userName or password"

// Field order matters: binding stops at the first bad value, and
// earlier fields keep what was submitted. The bool goes last so a
// mangled rememberMe never discards the return URL.
type loginForm struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	ReturnURL  string `form:"returnUrl"`
	RememberMe bool   `form:"rememberMe"`
}

// LoginGet renders the login prompt for an authorization request.
func (h *Handler) LoginGet(c *gin.Context) {
	returnURL := c.Query("returnUrl")

	actx, err := h.engine.ResolveAuthorizationContext(c.Request.Context(), returnURL)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error", errorView{Message: "failed to resolve authorization request"})
		return
	}

	// Requests demanding a specific external provider are a declared
	// unimplemented path, not a silent fallback to local login.
	if actx != nil && actx.IdP != "" {
		c.HTML(http.StatusNotImplemented, "error", errorView{Message: "External login is not implemented!"})
		return
	}

	vm := h.buildLoginView(actx, returnURL)
	c.HTML(http.StatusOK, "login", vm)
}

// LoginPost validates credentials and issues the local session.
func (h *Handler) LoginPost(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		// partially bound values survive a bind error; keep them so the
		// re-rendered prompt does not wipe what the user typed
		h.renderLoginError(c, form)
		return
	}

	if form.Email == "" || form.Password == "" {
		h.renderLoginError(c, form)
		return
	}

	user, err := h.credentials.FindUser(c.Request.Context(), form.Email)
	if err != nil || !h.credentials.VerifyPassword(user, form.Password) {
		// one shared path for unknown user and wrong password
		h.renderLoginError(c, form)
		return
	}

	props := session.Properties{
		ExpiresAt:   time.Now().Add(time.Duration(h.cfg.TokenLifetimeMinutes) * time.Minute),
		RedirectURI: form.ReturnURL,
	}
	if form.RememberMe {
		props.ExpiresAt = time.Now().Add(time.Duration(h.cfg.PermanentTokenLifetimeDays) * 24 * time.Hour)
		props.Persistent = true
	}

	if _, err := h.issuer.IssueSession(c.Request.Context(), c.Writer, user, props); err != nil {
		logger.Error("failed to issue session", map[string]any{"error": err.Error()})
		c.HTML(http.StatusInternalServerError, "error", errorView{Message: "failed to sign in"})
		return
	}

	if h.returnURL.IsSafeReturnUrl(form.ReturnURL) {
		c.Redirect(http.StatusFound, form.ReturnURL)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// renderLoginError re-renders the prompt with the generic credential
// error, preserving the submitted return URL, email and remember-me.
func (h *Handler) renderLoginError(c *gin.Context, form loginForm) {
	actx, err := h.engine.ResolveAuthorizationContext(c.Request.Context(), form.ReturnURL)
	if err != nil {
		actx = nil
	}

	vm := h.buildLoginView(actx, form.ReturnURL)
	vm.Email = form.Email
	vm.RememberMe = form.RememberMe
	vm.Error = loginErrorMessage
	c.HTML(http.StatusOK, "login", vm)
}

func (h *Handler) buildLoginView(actx *interaction.AuthorizationContext, returnURL string) loginView {
	vm := loginView{
		ReturnURL:        returnURL,
		EnableLocalLogin: true,
	}

	if actx != nil {
		vm.Email = actx.LoginHint
		if client, ok := h.engine.FindEnabledClient(actx.ClientID); ok {
			vm.EnableLocalLogin = client.EnableLocalLogin
		}
	}

	return vm
}
