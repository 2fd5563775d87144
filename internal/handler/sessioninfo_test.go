package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroQM1/MrService/internal/provider"
	"github.com/pedroQM1/MrService/internal/session"
)

func TestSessionGetRejectsAnonymous(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())

	rec := env.get("/account/session")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionGetReportsPrincipal(t *testing.T) {
	env := newTestEnv(t, provider.NewRegistry())
	cookie := env.loginAs(t, session.LocalIdentityProvider)

	rec := env.get("/account/session", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"sub":"uid-1"`)
	assert.Contains(t, body, `"email":"demo@x.com"`)
	assert.Contains(t, body, `"idp":"local"`)
}
