package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/logger"
	"github.com/formpulse/backend/subm"
)

func (h *SubmHttpHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	type responseRequest struct {
		QuestionID any `json:"questionId"`
		Question   any `json:"question"`
		Answer     any `json:"answer"`
		Type       any `json:"type"`
	}
	type submitRequest struct {
		FormID    string            `json:"formId"`
		Responses []responseRequest `json:"responses"`
	}

	type submitResponse struct {
		Message string `json:"message"`
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest,
			subm.ErrCodeInvalidInput)
		return
	}

	responses := make([]subm.RawResponse, len(request.Responses))
	for i, resp := range request.Responses {
		responses[i] = subm.RawResponse{
			QuestionID: coerceString(resp.QuestionID),
			Question:   coerceString(resp.Question),
			Answer:     coerceString(resp.Answer),
			Type:       coerceString(resp.Type),
		}
	}

	err := h.submSrvc.CreateSubmission(r.Context(), request.FormID, responses)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteCreatedJson(w, submitResponse{
		Message: "Feedback submitted successfully",
	})
}

// coerceString mirrors the loose typing of the public submit payload:
// clients send ratings as numbers and everything else as strings.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// drop the decimal point for whole numbers, "4" not "4.000000"
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
