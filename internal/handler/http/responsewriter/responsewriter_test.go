package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Zero(t, rw.BytesWritten())
	assert.False(t, rw.Written())
}

func TestWrap_Idempotent(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, rw.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	n, err := rw.Write([]byte(`{"ok":`))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, err = rw.Write([]byte(`true}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.StatusCode(), "implicit status")
	assert.Equal(t, 11, rw.BytesWritten())
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)
	assert.Same(t, rec, rw.Unwrap())

	// http.ResponseController は Unwrap を辿って Flush に到達できる
	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}
