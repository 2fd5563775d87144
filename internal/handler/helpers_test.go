package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/pedroQM1/MrService/internal/config"
	"github.com/pedroQM1/MrService/internal/credentials"
	"github.com/pedroQM1/MrService/internal/identity"
	"github.com/pedroQM1/MrService/internal/interaction"
	"github.com/pedroQM1/MrService/internal/middleware"
	"github.com/pedroQM1/MrService/internal/provider"
	"github.com/pedroQM1/MrService/internal/session"
)

const (
	testUserEmail    = "demo@x.com"
	testUserPassword = "right"
)

type testEnv struct {
	router   *gin.Engine
	engine   *interaction.InMemoryService
	users    *identity.MemoryStore
	sessions session.Store
	issuer   *session.Issuer
	cfg      *config.Config
}

// fakeTerminator records sign-out calls and optionally fails them.
type fakeTerminator struct {
	scheme   string
	fail     bool
	called   bool
	logoutID string
}

func (f *fakeTerminator) Scheme() string { return f.scheme }

func (f *fakeTerminator) SignOut(_ context.Context, logoutID, _ string) error {
	f.called = true
	f.logoutID = logoutID
	if f.fail {
		return context.DeadlineExceeded
	}
	return nil
}

func newTestEnv(t *testing.T, terminators *provider.Registry) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	sessions := session.NewRedisStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	users := identity.NewMemoryStore()
	hash, err := credentials.HashPassword(testUserPassword)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(),
		identity.NewUser(testUserEmail, testUserEmail, "", hash)))

	engine := interaction.NewInMemoryService("/",
		interaction.Client{
			ID:               "mvc",
			Name:             "MVC Client",
			EnableLocalLogin: true,
			RedirectURIs:     []string{"/app/callback"},
		},
		interaction.Client{
			ID:               "kiosk",
			Name:             "Kiosk",
			EnableLocalLogin: false,
		},
	)

	cfg := &config.Config{
		TokenLifetimeMinutes:       120,
		PermanentTokenLifetimeDays: 365,
	}

	issuer := session.NewIssuer(sessions)
	h := NewHandler(
		engine,
		interaction.NewReturnURLValidator(engine),
		credentials.NewService(users),
		issuer,
		terminators,
		cfg,
	)

	auth := middleware.NewAuthMiddleware(sessions)

	router := gin.New()
	router.Use(middleware.GinResolveSession(auth))
	router.SetHTMLTemplate(Templates())
	h.RegisterRoutes(router, auth)

	return &testEnv{
		router:   router,
		engine:   engine,
		users:    users,
		sessions: sessions,
		issuer:   issuer,
		cfg:      cfg,
	}
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// loginAs issues a session directly in the store, bypassing the login
// flow, and returns the matching cookie.
func (e *testEnv) loginAs(t *testing.T, idp string) *http.Cookie {
	t.Helper()

	sessionID, err := session.GenerateID()
	require.NoError(t, err)

	require.NoError(t, e.sessions.Create(context.Background(), session.Session{
		SessionID:        sessionID,
		UserID:           "uid-1",
		Email:            testUserEmail,
		IdentityProvider: idp,
		CreatedAt:        time.Now(),
		ExpiresAt:        time.Now().Add(time.Hour),
	}))

	return &http.Cookie{Name: session.CookieName, Value: sessionID}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
