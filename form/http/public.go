package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
)

func (h *FormHttpHandler) GetPublicForm(w http.ResponseWriter, r *http.Request) {
	accessCode := chi.URLParam(r, "accessCode")

	f, err := h.formSrvc.GetPublicForm(r.Context(), accessCode)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, MapPublicForm(f))
}
