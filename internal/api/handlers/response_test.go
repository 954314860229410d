package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	var dst decodeTarget
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"wash"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "wash", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	assert.Error(t, DecodeJSON(r, &decodeTarget{}))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &decodeTarget{}))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondNotFound(w, "Blocker not found.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Blocker not found."}`, w.Body.String())
}

func TestRespondJSONWithoutBody(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
