package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/formpulse/backend/form"
	"github.com/formpulse/backend/httpjson"
	"github.com/formpulse/backend/user/auth"
)

const errCodeInvalidInput = "invalid_input"

type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type Form struct {
	UUID        string     `json:"uuid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Active      bool       `json:"active"`
	OwnerUUID   string     `json:"ownerUuid,omitempty"`
	AccessCode  string     `json:"accessCode"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func mapQuestions(qs []form.Question) []Question {
	res := make([]Question, len(qs))
	for i, q := range qs {
		res[i] = Question{
			ID:       q.ID,
			Question: q.Text,
			Type:     q.Kind,
			Required: q.Required,
		}
	}
	return res
}

func MapForm(f *form.Form) Form {
	return Form{
		UUID:        f.UUID.String(),
		Title:       f.Title,
		Description: f.Description,
		Questions:   mapQuestions(f.Questions),
		Active:      f.Active,
		OwnerUUID:   f.OwnerUUID.String(),
		AccessCode:  f.AccessCode,
		CreatedAt:   f.CreatedAt,
	}
}

// MapPublicForm omits the owner reference from the payload served to
// anonymous visitors.
func MapPublicForm(f *form.Form) Form {
	res := MapForm(f)
	res.OwnerUUID = ""
	return res
}

// RequireOwner extracts the authenticated caller's uuid from the JWT
// claims, writing a 401 when the request is anonymous or malformed.
func RequireOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusUnauthorized),
			http.StatusUnauthorized,
			"unauthorized")
		return uuid.Nil, false
	}
	owner, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusUnauthorized),
			http.StatusUnauthorized,
			"unauthorized")
		return uuid.Nil, false
	}
	return owner, true
}
