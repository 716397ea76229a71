package http

import (
	"encoding/json"
	"net/http"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
	"github.com/formpulse/backend/user"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	type registerResponse struct {
		UUID  string `json:"uuid"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest,
			errCodeInvalidInput)
		return
	}

	created, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := registerResponse{
		UUID:  created.UUID.String(),
		Name:  created.Name,
		Email: created.Email,
		Role:  created.Role,
	}

	httpjson.WriteCreatedJson(w, response)
}
