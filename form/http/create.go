package http

import (
	"encoding/json"
	"net/http"

	"github.com/formpulse/backend/form"
	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
)

func (h *FormHttpHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	type questionRequest struct {
		Question string `json:"question"`
		Type     string `json:"type"`
		Required bool   `json:"required"`
	}
	type createFormRequest struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Questions   []questionRequest `json:"questions"`
	}

	owner, ok := RequireOwner(w, r)
	if !ok {
		return
	}

	var request createFormRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest,
			errCodeInvalidInput)
		return
	}

	questions := make([]form.QuestionInput, len(request.Questions))
	for i, q := range request.Questions {
		questions[i] = form.QuestionInput{
			Text:     q.Question,
			Kind:     q.Type,
			Required: q.Required,
		}
	}

	created, err := h.formSrvc.CreateForm(r.Context(), form.CreateFormParams{
		OwnerUUID:   owner,
		Title:       request.Title,
		Description: request.Description,
		Questions:   questions,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteCreatedJson(w, MapForm(created))
}
