package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
)

func (h *FormHttpHandler) ToggleForm(w http.ResponseWriter, r *http.Request) {
	type toggleResponse struct {
		Active bool `json:"active"`
	}

	owner, ok := RequireOwner(w, r)
	if !ok {
		return
	}

	formId := chi.URLParam(r, "formId")

	active, err := h.formSrvc.ToggleActive(r.Context(), formId, owner)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toggleResponse{Active: active})
}
