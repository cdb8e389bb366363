package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockmate/stockmate-api/internal/api/handler/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveRoutes runs one request through a router built from the given route
// group, the same way the server wires them.
func serveRoutes(routes []router.Route, method, target string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)

	return w
}

func TestHealthcheck(t *testing.T) {
	w := serveRoutes(Healthcheck(), http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
