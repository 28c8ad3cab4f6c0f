package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/poetree/internal/config"
	"github.com/sbilibin2017/poetree/internal/handlers"
	"github.com/sbilibin2017/poetree/internal/middlewares"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/ratelimit"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build date: 2026-10-01")
	assert.Contains(t, output, "Build commit: abcd1234")
}

type routerMocks struct {
	auth       *handlers.MockAuthenticator
	users      *handlers.MockUserManager
	topics     *handlers.MockTopicManager
	poems      *handlers.MockPoemManager
	comments   *handlers.MockCommentManager
	engagement *handlers.MockEngager
	tokener    *middlewares.MockTokener
	limiter    *middlewares.MockLimiter
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	ctrl := gomock.NewController(t)
	m := routerMocks{
		auth:       handlers.NewMockAuthenticator(ctrl),
		users:      handlers.NewMockUserManager(ctrl),
		topics:     handlers.NewMockTopicManager(ctrl),
		poems:      handlers.NewMockPoemManager(ctrl),
		comments:   handlers.NewMockCommentManager(ctrl),
		engagement: handlers.NewMockEngager(ctrl),
		tokener:    middlewares.NewMockTokener(ctrl),
		limiter:    middlewares.NewMockLimiter(ctrl),
	}
	h := newRouter(routes{
		auth:       m.auth,
		users:      m.users,
		topics:     m.topics,
		poems:      m.poems,
		comments:   m.comments,
		engagement: m.engagement,
		tokener:    m.tokener,
		realm:      "poetree",
		limiter:    m.limiter,
		health: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		},
		swagger: "http://localhost:8080/swagger/doc.json",
	})
	return h, m
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := serve(h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	h, m := newTestRouter(t)
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing bearer token"))

	rr := serve(h, http.MethodGet, "/poems", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `Bearer realm="poetree"`, rr.Header().Get("WWW-Authenticate"))
}

func TestRouter_ProtectedRouteWithToken(t *testing.T) {
	h, m := newTestRouter(t)
	uid := uuid.New()
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.tokener.EXPECT().GetUserID(gomock.Any(), "token").Return(uid, nil)
	m.poems.EXPECT().List(gomock.Any(), uid, gomock.Nil(), gomock.Nil(), 1).
		Return(models.Page[models.PoemFeedDTO]{List: []models.PoemFeedDTO{}}, nil)

	rr := serve(h, http.MethodGet, "/poems", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"poems"`)
}

func TestRouter_AuthRoutesAreRateLimited(t *testing.T) {
	h, m := newTestRouter(t)
	m.limiter.EXPECT().Allow(gomock.Any(), "10.0.0.1").
		Return(ratelimit.Decision{Allowed: false, RetryAfter: 30 * time.Second}, nil)

	rr := serve(h, http.MethodPost, "/auth/signin", `{"email":"jane@poetree.art","password":"secret"}`)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "30", rr.Header().Get("Retry-After"))
}

func TestRouter_RateLimitKeysOnSocketAddress(t *testing.T) {
	h, m := newTestRouter(t)
	m.limiter.EXPECT().Allow(gomock.Any(), "10.0.0.1").
		Return(ratelimit.Decision{Allowed: false, RetryAfter: time.Second}, nil).Times(3)

	for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", spoofed)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	}
}

func TestRouter_AuthRoutesSkipTokenCheck(t *testing.T) {
	h, m := newTestRouter(t)
	m.limiter.EXPECT().Allow(gomock.Any(), "10.0.0.1").Return(ratelimit.Decision{Allowed: true, Remaining: 19}, nil)
	m.auth.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(nil)

	rr := serve(h, http.MethodPost, "/auth/reset", `{"email":"jane@poetree.art"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "19", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := serve(h, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "poetree", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")
	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		AppHost:  "127.0.0.1",
		AppPort:  "0",
		GRPCPort: "0",
		LogLevel: "debug",
		Postgres: config.Postgres{
			URL:          fmt.Sprintf("postgres://user:password@%s:%d/poetree?sslmode=disable", pgHost, pgPort.Int()),
			MaxOpenConns: 3,
			MaxIdleConns: 3,
		},
		Redis: config.Redis{Host: redisHost, Port: redisPort.Int(), PoolSize: 5, MinIdleConns: 1},
		JWT: config.JWT{
			SecretKey:  "testsecret",
			Issuer:     "poetree",
			Audience:   "poetree-users",
			Realm:      "poetree",
			AccessExp:  time.Hour,
			RefreshExp: 2 * time.Hour,
		},
		TopicCacheTTL:   time.Minute,
		RateLimit:       20,
		RateLimitWindow: time.Minute,
	}

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("run did not stop after the context was cancelled")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
