package form_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/backend/form"
	formhttp "github.com/formpulse/backend/form/http"
	"github.com/formpulse/backend/user/auth"
)

var testJwtKey = []byte("test")

func setupFormHttpHandler(t *testing.T) http.Handler {
	t.Helper()
	repo := form.NewInMemFormRepo()
	formSrvc := form.NewFormSrvc(repo)
	formHandler := formhttp.NewFormHttpHandler(formSrvc)
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware(testJwtKey))
	formHandler.RegisterRoutes(router)
	return router
}

func newOwnerToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	owner := uuid.New()
	token, err := auth.GenerateJWT("Test Admin", "admin@example.com", "admin", owner, testJwtKey)
	require.NoError(t, err)
	return owner, token
}

func doJsonReq(t *testing.T, handler http.Handler, method, path, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func defaultFormBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Customer feedback",
		"description": "Tell us how we did",
		"questions": []map[string]interface{}{
			{"question": "Overall satisfaction", "type": "rating", "required": true},
			{"question": "Comments", "type": "text", "required": false},
		},
	}
}

func createForm(t *testing.T, handler http.Handler, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := doJsonReq(t, handler, http.MethodPost, "/forms", token, body)
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseWrapper))
	require.True(t, responseWrapper.Success)
	return responseWrapper.Data
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.GreaterOrEqual(t, w.Code, 400, "Expected error status code")

	var errorResponse struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.False(t, errorResponse.Success, "Expected success to be false")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
