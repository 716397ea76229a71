package subm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/backend/form"
	"github.com/formpulse/backend/srvcerror"
	"github.com/formpulse/backend/subm"
)

type fixture struct {
	formSrvc *form.FormSrvc
	submSrvc *subm.SubmSrvc
	submRepo *subm.InMemSubmRepo
	owner    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	formRepo := form.NewInMemFormRepo()
	submRepo := subm.NewInMemSubmRepo()
	formSrvc := form.NewFormSrvc(formRepo)
	return &fixture{
		formSrvc: formSrvc,
		submSrvc: subm.NewSubmSrvc(submRepo, formSrvc),
		submRepo: submRepo,
		owner:    uuid.New(),
	}
}

// newFeedbackForm creates a form with one rating question and one text
// question, returning it with assigned question ids.
func (f *fixture) newFeedbackForm(t *testing.T) *form.Form {
	t.Helper()
	created, err := f.formSrvc.CreateForm(context.Background(), form.CreateFormParams{
		OwnerUUID:   f.owner,
		Title:       "Customer feedback",
		Description: "Tell us how we did",
		Questions: []form.QuestionInput{
			{Text: "Overall satisfaction", Kind: form.QuestionKindRating, Required: true},
			{Text: "Comments", Kind: form.QuestionKindText},
		},
	})
	require.NoError(t, err)
	return created
}

// submitAnswers submits one rating answer and one text answer against
// the fixture form.
func (f *fixture) submitAnswers(t *testing.T, fm *form.Form, rating, comment string) {
	t.Helper()
	err := f.submSrvc.CreateSubmission(context.Background(), fm.UUID.String(), []subm.RawResponse{
		{
			QuestionID: fm.Questions[0].ID,
			Question:   fm.Questions[0].Text,
			Answer:     rating,
			Type:       form.QuestionKindRating,
		},
		{
			QuestionID: fm.Questions[1].ID,
			Question:   fm.Questions[1].Text,
			Answer:     comment,
			Type:       form.QuestionKindText,
		},
	})
	require.NoError(t, err)
}

func assertSrvcErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected a service error, got: %v", err)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}
