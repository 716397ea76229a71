package subm_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/backend/form"
	"github.com/formpulse/backend/subm"
)

func TestCreateSubmissionStoresAllResponses(t *testing.T) {
	f := newFixture(t)
	fm := f.newFeedbackForm(t)

	responses := []subm.RawResponse{
		{QuestionID: fm.Questions[0].ID, Question: fm.Questions[0].Text, Answer: "5", Type: "rating"},
		{QuestionID: fm.Questions[1].ID, Question: fm.Questions[1].Text, Answer: "ok", Type: "text"},
	}
	err := f.submSrvc.CreateSubmission(context.Background(), fm.UUID.String(), responses)
	require.NoError(t, err)

	rows, err := f.submRepo.ListByForm(context.Background(), fm.UUID.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Responses, len(responses), "no response may be dropped")
	for i, stored := range rows[0].Responses {
		assert.Equal(t, responses[i].QuestionID, stored.QuestionID)
		assert.Equal(t, responses[i].Question, stored.Question)
		assert.Equal(t, responses[i].Answer, stored.Answer)
		assert.Equal(t, responses[i].Type, stored.Kind)
	}
	assert.NotEmpty(t, rows[0].CreatedAtRfc3339)
}

func TestCreateSubmissionValidation(t *testing.T) {
	f := newFixture(t)
	fm := f.newFeedbackForm(t)

	valid := subm.RawResponse{
		QuestionID: fm.Questions[0].ID,
		Question:   fm.Questions[0].Text,
		Answer:     "5",
		Type:       "rating",
	}

	testCases := []struct {
		name      string
		formId    string
		responses []subm.RawResponse
	}{
		{name: "empty form id", formId: "", responses: []subm.RawResponse{valid}},
		{name: "no responses", formId: fm.UUID.String(), responses: nil},
		{
			name:   "response without question id",
			formId: fm.UUID.String(),
			responses: []subm.RawResponse{
				{Question: "Q", Answer: "5", Type: "rating"},
			},
		},
		{
			name:   "response without type",
			formId: fm.UUID.String(),
			responses: []subm.RawResponse{
				{QuestionID: "q1", Question: "Q", Answer: "5"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.submSrvc.CreateSubmission(context.Background(), tc.formId, tc.responses)
			assertSrvcErrCode(t, err, subm.ErrCodeInvalidInput)
		})
	}
}

func TestCreateSubmissionAllowsEmptyAnswer(t *testing.T) {
	f := newFixture(t)
	fm := f.newFeedbackForm(t)

	// skipped questions arrive as empty answers and are filtered at
	// aggregation time, not rejected at intake
	err := f.submSrvc.CreateSubmission(context.Background(), fm.UUID.String(), []subm.RawResponse{
		{QuestionID: fm.Questions[1].ID, Question: fm.Questions[1].Text, Answer: "", Type: "text"},
	})
	require.NoError(t, err)
}

func TestCreateSubmissionUnknownForm(t *testing.T) {
	f := newFixture(t)

	err := f.submSrvc.CreateSubmission(context.Background(), uuid.New().String(), []subm.RawResponse{
		{QuestionID: "q", Question: "Q", Answer: "5", Type: "rating"},
	})
	assertSrvcErrCode(t, err, form.ErrCodeFormNotFound)
}

func TestCreateSubmissionInactiveForm(t *testing.T) {
	f := newFixture(t)
	fm := f.newFeedbackForm(t)

	_, err := f.formSrvc.ToggleActive(context.Background(), fm.UUID.String(), f.owner)
	require.NoError(t, err)

	err = f.submSrvc.CreateSubmission(context.Background(), fm.UUID.String(), []subm.RawResponse{
		{QuestionID: fm.Questions[0].ID, Question: fm.Questions[0].Text, Answer: "5", Type: "rating"},
	})
	// same error as an unknown form, existence must not leak
	assertSrvcErrCode(t, err, form.ErrCodeFormNotFound)
}

func TestCreateSubmissionRepeatedSubmitsAllowed(t *testing.T) {
	f := newFixture(t)
	fm := f.newFeedbackForm(t)

	for i := 0; i < 3; i++ {
		f.submitAnswers(t, fm, "5", "again")
	}

	rows, err := f.submRepo.ListByForm(context.Background(), fm.UUID.String())
	require.NoError(t, err)
	assert.Len(t, rows, 3, "no duplicate detection on the submit path")
}
