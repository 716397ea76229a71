package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/formpulse/backend/subm"
)

type SubmHttpHandler struct {
	submSrvc *subm.SubmSrvc
}

func NewSubmHttpHandler(submSrvc *subm.SubmSrvc) *SubmHttpHandler {
	return &SubmHttpHandler{submSrvc: submSrvc}
}

func (h *SubmHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/submit", h.SubmitFeedback)
	r.Get("/forms/{formId}/submissions", h.GetFormResults)
}
