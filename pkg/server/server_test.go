package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/supertile/pkg/cache"
	"github.com/matzehuels/supertile/pkg/catalog"
	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	cat := catalog.Default()
	runner := pipeline.NewRunner(cat, cache.NewMemoryCache(16), nil, logger)
	ts := httptest.NewServer(New(runner, cat, logger, Options{}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[HealthResponse](t, resp).Status)

	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "every response carries a request id")
}

func TestRequestIDPropagated(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
}

func TestKinds(t *testing.T) {
	ts := newTestServer(t)
	kinds := decode[[]KindResponse](t, get(t, ts, "/v1/kinds"))
	require.Len(t, kinds, catalog.Default().Len())
	assert.Equal(t, "AND", kinds[0].Name)

	byName := map[string]KindResponse{}
	for _, k := range kinds {
		byName[k.Name] = k
	}
	assert.Equal(t, KindResponse{Name: "WIRE", Procedure: "wire", Inputs: 1, Outputs: 1, Description: byName["WIRE"].Description}, byName["WIRE"])
	assert.Equal(t, 0, byName["INPUT"].Outputs)
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/v1/layout?kind=OR&in=05&out=3&paths=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[LayoutResponse](t, resp)
	assert.Equal(t, "305", body.Key)
	assert.Equal(t, "OR_3, wire13, empty, empty, wire04, empty, wire02", body.Reduced)
	assert.Equal(t, "SOUTH_WEST", body.Lookup[0])
	assert.NotEmpty(t, body.Paths)
}

func TestLayoutErrors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name   string
		query  string
		status int
		code   errors.Code
	}{
		{"missing kind", "in=05&out=3", http.StatusBadRequest, errors.ErrCodeInvalidRequest},
		{"unknown kind", "kind=MUX&in=05&out=3", http.StatusBadRequest, errors.ErrCodeInvalidRequest},
		{"overlap", "kind=OR&in=05&out=5", http.StatusBadRequest, errors.ErrCodeInvalidRequest},
		{"bad position", "kind=OR&in=0x&out=3", http.StatusBadRequest, errors.ErrCodeInvalidRequest},
		{"strict mismatch", "kind=OR&in=02&out=1", http.StatusUnprocessableEntity, errors.ErrCodeNoValidOrientation},
		{"bad format", "kind=OR&in=05&out=3&format=gif", http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, "/v1/layout?"+tt.query)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode[ErrorResponse](t, resp)
			assert.Equal(t, string(tt.code), body.Code)
			assert.NotEmpty(t, body.Message)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestLayoutDOT(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/v1/layout?kind=WIRE&in=4&out=0&format=dot")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vnd.graphviz", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(data), "graph G"))
}

func TestTable(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/v1/table/wire")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "false", resp.Header.Get("X-Cache-Hit"))

	doc := decode[map[string]json.RawMessage](t, resp)
	assert.Contains(t, doc, "1in1outWIRE_supertile_layouts")
	assert.Contains(t, doc, "failures")

	again := get(t, ts, "/v1/table/WIRE")
	assert.Equal(t, "true", again.Header.Get("X-Cache-Hit"))

	missing := get(t, ts, "/v1/table/MUX")
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/v2/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, string(errors.ErrCodeNotFound), decode[ErrorResponse](t, resp).Code)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(errors.New(errors.ErrCodeUnsupportedWire, "x")))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(errors.New(errors.ErrCodeImpossibleRouting, "x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(io.EOF))
}

func TestRunAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	logger := log.NewWithOptions(io.Discard, log.Options{})
	cat := catalog.Default()
	runner := pipeline.NewRunner(cat, cache.NewNullCache(), nil, logger)
	s := New(runner, cat, logger, Options{Addr: ln.Addr().String()})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err = s.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInternal))
	assert.Contains(t, err.Error(), "listen on "+ln.Addr().String())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunStopsOnCancel(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	cat := catalog.Default()
	runner := pipeline.NewRunner(cat, cache.NewNullCache(), nil, logger)
	s := New(runner, cat, logger, Options{Addr: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
