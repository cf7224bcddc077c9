package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_FirstWriteHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)

	n, err := rw.Write([]byte("hello"))
	_, _ = rw.Write([]byte(" world"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 11, rw.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	rw := wrapResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Zero(t, rw.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.Same(t, rec, wrapResponseWriter(rec).Unwrap())
}
