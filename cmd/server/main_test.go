package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gameboot.wasm"), []byte("\x00asm"), 0600))
	handler, err := newHandler(dir)
	require.NoError(t, err)
	return handler
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestServeIndex(t *testing.T) {
	resp := get(newTestHandler(t), "/")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "no-cache", resp.Header().Get("Cache-Control"))
	assert.Equal(t, "<html></html>", resp.Body.String())
}

func TestServeWasm(t *testing.T) {
	resp := get(newTestHandler(t), "/gameboot.wasm")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/wasm", resp.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header().Get("Cache-Control"))
	assert.Equal(t, "\x00asm", resp.Body.String())
}
