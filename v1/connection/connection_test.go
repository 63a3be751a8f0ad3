package connection

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rickhofstede/weaviate-go/v1/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObserver collects operation contexts for assertions.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func newTestConnection(t *testing.T, handler http.Handler) (*Connection, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	conn, err := NewConnection(ConnectionParams{Config: FromHost(host)})
	require.NoError(t, err)

	return conn, srv
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	conn, _ := newTestConnection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))

	resp, err := conn.Post(context.Background(), "/batch/objects", map[string]interface{}{
		"fields": []string{"ALL"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/batch/objects", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"fields":["ALL"]}`, string(gotBody))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Greater(t, resp.Elapsed, time.Duration(0))
}

func TestGetEncodesQueryParams(t *testing.T) {
	var gotQuery url.Values

	conn, _ := newTestConnection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))

	params := url.Values{}
	params.Set("include", "vector")

	_, err := conn.Get(context.Background(), "/objects/123", params)
	require.NoError(t, err)
	assert.Equal(t, "vector", gotQuery.Get("include"))
}

func TestAuthTokenSetsBearerHeader(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	cfg := FromHost(host).WithAuthToken("secret-token")
	conn, err := NewConnection(ConnectionParams{Config: cfg})
	require.NoError(t, err)

	_, err = conn.Get(context.Background(), "/schema", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestNoAuthTokenOmitsHeader(t *testing.T) {
	var gotAuth string
	sawHeader := false

	conn, _ := newTestConnection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))

	_, err := conn.Get(context.Background(), "/schema", nil)
	require.NoError(t, err)
	assert.False(t, sawHeader, "Authorization header should be absent, got %q", gotAuth)
}

func TestNonOKStatusIsNotAnError(t *testing.T) {
	conn, _ := newTestConnection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":[{"message":"invalid object"}]}`))
	}))

	resp, err := conn.Post(context.Background(), "/batch/objects", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "invalid object")
}

func TestConnectionRefusedWrapsErrConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close() // nothing listens anymore

	conn, err := NewConnection(ConnectionParams{Config: FromHost(host)})
	require.NoError(t, err)

	_, err = conn.Post(context.Background(), "/batch/objects", map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
	assert.False(t, IsTimeout(err))
}

func TestReadTimeoutIsDetectedAsTimeout(t *testing.T) {
	block := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(srv.Close)
	// Registered after srv.Close so it runs first (cleanups are LIFO) and
	// unblocks the handler before Close waits for active connections.
	t.Cleanup(func() { close(block) })

	host := strings.TrimPrefix(srv.URL, "http://")
	cfg := FromHost(host).WithReadTimeout(50 * time.Millisecond)
	conn, err := NewConnection(ConnectionParams{Config: cfg})
	require.NoError(t, err)

	_, err = conn.Get(context.Background(), "/objects", nil)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestContextCancellationIsTimeout(t *testing.T) {
	block := make(chan struct{})

	conn, _ := newTestConnection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	// Registered after the server's Close cleanup so it runs first (LIFO)
	// and unblocks the handler before Close waits for active connections.
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := conn.Get(ctx, "/objects", nil)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestObserverSeesEveryExchange(t *testing.T) {
	obs := &TestObserver{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	conn, err := NewConnection(ConnectionParams{
		Config:   FromHost(host),
		Observer: obs,
	})
	require.NoError(t, err)

	_, err = conn.Post(context.Background(), "/batch/objects", map[string]interface{}{})
	require.NoError(t, err)
	_, err = conn.Get(context.Background(), "/schema", nil)
	require.NoError(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 2)
	assert.Equal(t, "connection", ops[0].Component)
	assert.Equal(t, "post", ops[0].Operation)
	assert.Equal(t, "/batch/objects", ops[0].Resource)
	assert.Equal(t, "get", ops[1].Operation)
}

func TestDecodeJSON(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"class":"Person","id":"abc"}`),
	}

	var out struct {
		Class string `json:"class"`
		ID    string `json:"id"`
	}
	require.NoError(t, resp.DecodeJSON(&out))
	assert.Equal(t, "Person", out.Class)
	assert.Equal(t, "abc", out.ID)

	empty := &Response{StatusCode: http.StatusNoContent}
	assert.Error(t, empty.DecodeJSON(&out))
}

func TestUnexpectedStatusCodeError(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusInternalServerError,
		Body:       []byte(`{"error":"boom"}`),
	}

	err := NewUnexpectedStatusCodeError("Create object", resp)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Contains(t, err.Error(), "Create object failed with status code 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestTimeoutConfigReportsDefaults(t *testing.T) {
	conn, err := NewConnection(ConnectionParams{Config: FromHost("localhost:8080")})
	require.NoError(t, err)

	connect, read := conn.TimeoutConfig()
	assert.Equal(t, 2*time.Second, connect)
	assert.Equal(t, 20*time.Second, read)
}

func TestConfigValidation(t *testing.T) {
	_, err := NewConnection(ConnectionParams{Config: &Config{Scheme: "ftp", Host: "x"}})
	assert.Error(t, err)

	_, err = NewConnection(ConnectionParams{Config: &Config{Scheme: "http"}})
	assert.Error(t, err)
}

func TestBaseURL(t *testing.T) {
	conn, err := NewConnection(ConnectionParams{Config: FromHost("localhost:8080")})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1", conn.BaseURL())
}
