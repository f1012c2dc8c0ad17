package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverPanic(t *testing.T) {
	app := newLightApplication()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app := newLightApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := app.getIdentityContext(r)
		assert.NotNil(t, identity)
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.authenticate(next)

	t.Run("no cookie is anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("invalid cookie is anonymous", func(t *testing.T) {
		verify := app.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := app.getIdentityContext(r)
			assert.True(t, identity.IsAnonymous())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "garbage"})
		res := httptest.NewRecorder()

		verify.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("valid cookie carries the identity", func(t *testing.T) {
		token := authToken(t, app, "user@example.com")

		verify := app.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := app.getIdentityContext(r)
			assert.Equal(t, "user@example.com", identity.Email)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
		res := httptest.NewRecorder()

		verify.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestRequireAuthUser(t *testing.T) {
	app := newLightApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := app.authenticate(app.requireAuthUser(next))

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("invalid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "garbage"})
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestRateLimit(t *testing.T) {
	app := newLightApplication()
	app.config.LimiterEnabled = true
	app.config.LimiterRPS = 1
	app.config.LimiterBurst = 2

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.rateLimit(next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)
	assert.Equal(t, http.StatusTooManyRequests, res.Code)

	// a different address has its own budget
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:4000"
	res = httptest.NewRecorder()

	middleware.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestEnableCORS(t *testing.T) {
	app := newLightApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.enableCORS(next)

	t.Run("trusted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)
		assert.Equal(t, "http://localhost:5173", res.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", res.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("untrusted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)
		assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "OPTIONS, GET, POST, PATCH, DELETE", res.Header().Get("Access-Control-Allow-Methods"))
	})
}
