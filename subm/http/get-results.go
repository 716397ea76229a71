package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	formhttp "github.com/formpulse/backend/form/http"
	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
	"github.com/formpulse/backend/subm"
)

func (h *SubmHttpHandler) GetFormResults(w http.ResponseWriter, r *http.Request) {
	type submissionResponse struct {
		UUID        string    `json:"uuid"`
		Responses   []any     `json:"responses"`
		SubmittedAt time.Time `json:"submittedAt"`
	}
	type resultsResponse struct {
		ChartData   []subm.RatingChart   `json:"chartData"`
		Comments    []subm.Comment       `json:"comments"`
		Submissions []submissionResponse `json:"submissions"`
		Form        formhttp.Form        `json:"form"`
	}

	owner, ok := formhttp.RequireOwner(w, r)
	if !ok {
		return
	}

	formId := chi.URLParam(r, "formId")

	results, err := h.submSrvc.GetFormResults(r.Context(), formId, owner)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	subms := make([]submissionResponse, len(results.Submissions))
	for i, sm := range results.Submissions {
		responses := make([]any, len(sm.Responses))
		for j, resp := range sm.Responses {
			responses[j] = map[string]string{
				"questionId": resp.QuestionID,
				"question":   resp.Question,
				"answer":     resp.Answer,
				"type":       resp.Kind,
			}
		}
		subms[i] = submissionResponse{
			UUID:        sm.UUID.String(),
			Responses:   responses,
			SubmittedAt: sm.SubmittedAt,
		}
	}

	httpjson.WriteSuccessJson(w, resultsResponse{
		ChartData:   results.Charts,
		Comments:    results.Comments,
		Submissions: subms,
		Form:        formhttp.MapForm(results.Form),
	})
}
