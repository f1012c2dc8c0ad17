package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/authservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/blogservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/commentservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/common"
	"github.com/sabbirsolid/blog-spotter-server/internal/wishlistservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestConfig() *Config {
	cfg := &Config{
		Port:           ":0",
		Environment:    "testing",
		Version:        "1.0.0",
		TrustedOrigins: "http://localhost:5173",
	}
	cfg.JWTSecret = "test-secret"
	cfg.LimiterEnabled = false
	cfg.LimiterRPS = 100
	cfg.LimiterBurst = 100

	return cfg
}

func newTestApplication(t *testing.T) (*application, *mongo.Database) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := newTestConfig()
	cache := common.NewCache(time.Minute, 5*time.Minute)

	app := &application{
		config:          cfg,
		logger:          logger,
		authService:     authservice.NewAuthService(cfg.JWTSecret),
		blogService:     blogservice.NewBlogService(db, cache),
		commentService:  commentservice.NewCommentService(db),
		wishlistService: wishlistservice.NewWishlistService(db),
	}

	return app, db
}

// newLightApplication builds an application without a store, for tests that
// only exercise the transport layer.
func newLightApplication() *application {
	cfg := newTestConfig()

	return &application{
		config:      cfg,
		logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		authService: authservice.NewAuthService(cfg.JWTSecret),
	}
}

// authToken issues a credential for the given email using the test secret.
func authToken(t *testing.T, app *application, email string) string {
	token, err := app.authService.IssueToken(email)
	assert.NoError(t, err)

	return token
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

// request sends a JSON request, attaching the credential cookie when a token
// is given.
func (ts *testServer) request(t *testing.T, method, path string, data any, token *string) (int, http.Header, envelope) {
	var body io.Reader
	if data != nil {
		jsonPayload, err := json.Marshal(data)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != nil {
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: *token})
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodGet, path, nil, token)
}

func (ts *testServer) post(t *testing.T, path string, data any, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPost, path, data, token)
}

func (ts *testServer) patch(t *testing.T, path string, data any, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPatch, path, data, token)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodDelete, path, nil, token)
}

func strptr(s string) *string {
	return &s
}
