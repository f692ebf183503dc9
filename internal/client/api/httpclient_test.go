package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rosdobro/dobrodela-cli/internal/backendtest"
	"github.com/rosdobro/dobrodela-cli/internal/client/cookies"
	cookierepo "github.com/rosdobro/dobrodela-cli/internal/client/repositories/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/common"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, baseURL string) (*HTTPClient, *cookies.Store) {
	t.Helper()
	log := discardLogger()
	store := cookies.NewStore(cookierepo.NewMemoryRepository(), log, false)
	return NewHTTPClient(baseURL, 5*time.Second, store, log), store
}

func TestRequest_AttachesBearerAndRequestID(t *testing.T) {
	b := backendtest.New(t)

	var gotAuth, gotReqID, gotContentType string
	b.Router.Get("/whatever", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		gotContentType = r.Header.Get("Content-Type")
		backendtest.WriteJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	})

	c, store := newTestClient(t, b.URL())
	store.SetAccessToken(context.Background(), "tok-123")

	var out map[string]string
	require.NoError(t, c.getJSON(context.Background(), "/whatever", &out))
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID)
	require.Empty(t, gotContentType, "GET carries no body, so no content type")
	require.Equal(t, "yes", out["ok"])
}

func TestRequest_NoTokenNoAuthHeader(t *testing.T) {
	b := backendtest.New(t)

	var sawAuth bool
	b.Router.Get("/open", func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		backendtest.WriteJSON(w, http.StatusOK, map[string]string{})
	})

	c, _ := newTestClient(t, b.URL())
	var out map[string]string
	require.NoError(t, c.getJSON(context.Background(), "/open", &out))
	require.False(t, sawAuth)
}

func TestRequest_RefreshThenRetrySucceeds(t *testing.T) {
	b := backendtest.New(t)

	calls := 0
	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			backendtest.WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		backendtest.WriteJSON(w, http.StatusOK, map[string]int{"n": 42})
	})
	b.Router.Get("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteJSON(w, http.StatusOK, map[string]any{"id": 1})
	})

	c, _ := newTestClient(t, b.URL())

	var out map[string]int
	require.NoError(t, c.getJSON(context.Background(), "/data", &out))
	require.Equal(t, 42, out["n"])
	require.Equal(t, 2, calls, "original request retried exactly once")
	require.Equal(t, 1, b.Calls("GET /users/me/"))
}

func TestRequest_OneShotRefresh_SecondUnauthorized(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	})
	b.Router.Get("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteJSON(w, http.StatusOK, map[string]any{"id": 1})
	})

	c, _ := newTestClient(t, b.URL())

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	require.ErrorIs(t, err, common.ErrSessionExpired)
	require.Equal(t, 1, b.Calls("GET /users/me/"), "no second refresh after the retry fails")
	require.Equal(t, 2, b.Calls("GET /data"))
}

func TestRequest_RefreshFailureFailsWithoutRetry(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	})
	b.Router.Get("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	})

	c, _ := newTestClient(t, b.URL())

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	require.ErrorIs(t, err, common.ErrSessionExpired)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, MsgSessionExpired, apiErr.Message)
	require.Equal(t, 401, apiErr.Status)
	require.Equal(t, 1, b.Calls("GET /data"), "original request not retried when refresh fails")
}

func TestRequest_LoginEndpointNeverRefreshes(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteDetail(w, http.StatusUnauthorized, "Incorrect username or password")
	})

	c, _ := newTestClient(t, b.URL())

	_, err := c.Login(context.Background(), "ann@example.com", "wrong1")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "Неверный логин или пароль", apiErr.Message)
	require.Equal(t, "Incorrect username or password", apiErr.Detail)
	require.Equal(t, 0, b.Calls("GET /users/me/"))
}

func TestRequest_UnknownDetailPassesThrough(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		backendtest.WriteDetail(w, http.StatusConflict, "Totally new failure mode")
	})

	c, _ := newTestClient(t, b.URL())

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "Totally new failure mode", apiErr.Message)
	require.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestRequest_NonJSONErrorBodyUsesStatusText(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	c, _ := newTestClient(t, b.URL())

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.NotEmpty(t, apiErr.Message)
	require.Empty(t, apiErr.Detail)
}

func TestRequest_MalformedSuccessBodyIsError(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{broken"))
	})

	c, _ := newTestClient(t, b.URL())

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	require.Error(t, err)
	_, isAPIErr := AsAPIError(err)
	require.False(t, isAPIErr, "a parse failure is not a backend-reported error")
}

func TestRequest_TransportErrorWrapsUnavailable(t *testing.T) {
	b := backendtest.New(t)
	url := b.URL()
	b.Server.Close()

	c, _ := newTestClient(t, url)

	err := c.getJSON(context.Background(), "/data", &map[string]any{})
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestRefreshSession_CoalescesConcurrentCallers(t *testing.T) {
	b := backendtest.New(t)

	b.Router.Get("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		backendtest.WriteJSON(w, http.StatusOK, map[string]any{"id": 1})
	})

	c, _ := newTestClient(t, b.URL())

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.refreshSession(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 1, b.Calls("GET /users/me/"), "concurrent refreshes share one in-flight request")
}
