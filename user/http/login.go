package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
	"github.com/formpulse/backend/user/auth"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	type loginResponse struct {
		Token string `json:"token"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest,
			errCodeInvalidInput)
		return
	}

	user, err := h.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	token, err := auth.GenerateJWT(user.Name, user.Email, user.Role, user.UUID, h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, loginResponse{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
