package form

import (
	"net/http"

	"github.com/formpulse/backend/srvcerror"
)

const ErrCodeTitleRequired = "title_required"

func newErrTitleRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleRequired,
		"form title is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeQuestionsRequired = "questions_required"

func newErrQuestionsRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionsRequired,
		"form must have at least one question",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeQuestionTextRequired = "question_text_required"

func newErrQuestionTextRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionTextRequired,
		"every question must have text",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeQuestionKindInvalid = "question_kind_invalid"

func newErrQuestionKindInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionKindInvalid,
		"question type must be either rating or text",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFormNotFound = "form_not_found"

// Absent and deactivated forms produce the same error so that access
// codes of disabled forms do not leak their existence.
func NewErrFormNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFormNotFound,
		"form not found or inactive",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeFormAccessDenied = "form_access_denied"

func NewErrFormAccessDenied() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFormAccessDenied,
		"you don't have access to this form",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeAccessCodeExhausted = "access_code_exhausted"

func newErrAccessCodeExhausted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAccessCodeExhausted,
		"could not assign a unique access code, please retry",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
