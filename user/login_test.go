package user_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/backend/user/auth"
)

func TestLoginHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"name":     "Test Admin",
		"email":    "test@example.com",
		"password": "password123",
		"role":     "admin",
	}
	w := register(t, userHandler, userData)
	require.Equal(t, http.StatusCreated, w.Code, "Registration failed: %s", w.Body.String())

	w = login(t, userHandler, map[string]interface{}{
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.True(t, responseWrapper.Success)
	assert.NotEmpty(t, responseWrapper.Data.Token)
	assert.Equal(t, "Test Admin", responseWrapper.Data.Name)

	// the token must round-trip through the validator with the same key
	claims, err := auth.ValidateJWT(responseWrapper.Data.Token, []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.UUID)
}

func TestLoginHttpWrongPassword(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"name":     "Test Admin",
		"email":    "test@example.com",
		"password": "password123",
	}
	w := register(t, userHandler, userData)
	require.Equal(t, http.StatusCreated, w.Code)

	w = login(t, userHandler, map[string]interface{}{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assertErrorInHttpResponse(t, w, "invalid_credentials")
}

func TestLoginHttpUnknownEmail(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	w := login(t, userHandler, map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	// unknown email and wrong password are indistinguishable
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assertErrorInHttpResponse(t, w, "invalid_credentials")
}
