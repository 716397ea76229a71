package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/formpulse/backend/form"
)

type FormHttpHandler struct {
	formSrvc *form.FormSrvc
}

func NewFormHttpHandler(formSrvc *form.FormSrvc) *FormHttpHandler {
	return &FormHttpHandler{formSrvc: formSrvc}
}

func (h *FormHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/forms", h.CreateForm)
	r.Get("/admin/forms", h.ListOwnForms)
	r.Patch("/forms/{formId}/toggle", h.ToggleForm)
	r.Get("/public/forms/{accessCode}", h.GetPublicForm)
}
