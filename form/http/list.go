package http

import (
	"net/http"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
)

func (h *FormHttpHandler) ListOwnForms(w http.ResponseWriter, r *http.Request) {
	owner, ok := RequireOwner(w, r)
	if !ok {
		return
	}

	forms, err := h.formSrvc.ListOwnForms(r.Context(), owner)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := make([]Form, len(forms))
	for i := range forms {
		response[i] = MapForm(&forms[i])
	}

	httpjson.WriteSuccessJson(w, response)
}
