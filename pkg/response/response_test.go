package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	out := Success(c, http.StatusCreated, map[string]string{"id": "42"}, "created", PageMeta{Total: 1, Page: 1, PerPage: 15, TotalPages: 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, out.Success)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, "42", body["data"].(map[string]any)["id"])
	assert.EqualValues(t, 15, body["meta"].(map[string]any)["per_page"])
	assert.NotContains(t, body, "error")
}

func TestSuccess_DefaultStatus(t *testing.T) {
	c, w := newContext()
	Success[any](c, 0, nil, "ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError(t *testing.T) {
	c, w := newContext()
	Error[any](c, http.StatusConflict, "email already in use", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusConflict, body["status"])
	assert.Equal(t, "email already in use", body["message"])
	assert.NotContains(t, body, "data")
}

func TestError_Details(t *testing.T) {
	c, w := newContext()
	Error[any](c, 0, "invalid payload", map[string]string{"email": "is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "is required", body["error"].(map[string]any)["email"])
}
