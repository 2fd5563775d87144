package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroQM1/MrService/internal/interaction"
	"github.com/pedroQM1/MrService/internal/provider"
)

func loginValues(email, password, returnURL string, remember bool) url.Values {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	form.Set("returnUrl", returnURL)
	if remember {
		form.Set("rememberMe", "true")
	}
	return form
}

func TestLoginGetRendersPrompt(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.get("/account/login?returnUrl=" + url.QueryEscape(
		interaction.AuthorizeCallbackPath+"?client_id=mvc&login_hint=hinted%40x.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="email" value="hinted@x.com"`)
	assert.Contains(t, rec.Body.String(), "Sign in")
}

func TestLoginGetFailsFastOnExternalIdP(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.get("/account/login?returnUrl=" + url.QueryEscape(
		interaction.AuthorizeCallbackPath+"?client_id=mvc&acr_values=idp:google"))

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "External login is not implemented!")
}

func TestLoginGetHonorsDisabledLocalLogin(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.get("/account/login?returnUrl=" + url.QueryEscape(
		interaction.AuthorizeCallbackPath+"?client_id=kiosk"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Local login is disabled")
	assert.NotContains(t, rec.Body.String(), "Sign in")
}

func TestLoginIssuesShortLivedSession(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.postForm("/account/login",
		loginValues(testUserEmail, testUserPassword, "/app/callback", false))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/app/callback", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	sess, err := env.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.False(t, sess.Persistent)
	assert.WithinDuration(t, time.Now().Add(120*time.Minute), sess.ExpiresAt, 5*time.Second)
}

func TestLoginRememberMeIssuesPersistentSession(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.postForm("/account/login",
		loginValues(testUserEmail, testUserPassword, "/app/callback", true))

	require.Equal(t, http.StatusFound, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	sess, err := env.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.True(t, sess.Persistent)
	assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), sess.ExpiresAt, 5*time.Second)
}

func TestLoginUnvalidatedReturnURLFallsBackToRoot(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.postForm("/account/login",
		loginValues(testUserEmail, testUserPassword, "https://evil.example.com/phish", false))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	wrongPassword := env.postForm("/account/login",
		loginValues(testUserEmail, "wrong", "/app/callback", false))
	unknownUser := env.postForm("/account/login",
		loginValues("nobody@x.com", "whatever", "/app/callback", false))

	require.Equal(t, http.StatusOK, wrongPassword.Code)
	require.Equal(t, http.StatusOK, unknownUser.Code)

	assert.Contains(t, wrongPassword.Body.String(), "Invalid userName or password")
	assert.Contains(t, unknownUser.Body.String(), "Invalid userName or password")

	assert.Nil(t, sessionCookie(wrongPassword))
	assert.Nil(t, sessionCookie(unknownUser))
}

func TestLoginFailurePreservesSubmittedFields(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.postForm("/account/login",
		loginValues(testUserEmail, "wrong", "/app/callback", true))

	body := rec.Body.String()
	assert.Contains(t, body, `name="returnUrl" value="/app/callback"`)
	assert.Contains(t, body, `name="email" value="demo@x.com"`)
	assert.Contains(t, body, "checked")
}

func TestLoginBindFailureKeepsSubmittedFields(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	form := loginValues(testUserEmail, testUserPassword, "/app/callback", false)
	form.Set("rememberMe", "notabool")

	rec := env.postForm("/account/login", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid userName or password")
	assert.Contains(t, body, `name="email" value="demo@x.com"`)
	assert.Contains(t, body, `name="returnUrl" value="/app/callback"`)
	assert.Nil(t, sessionCookie(rec))
}

func TestLoginEmptyInputRejected(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.postForm("/account/login", loginValues("", "", "/app/callback", false))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid userName or password")
	assert.Nil(t, sessionCookie(rec))
}
