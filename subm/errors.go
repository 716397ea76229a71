package subm

import (
	"net/http"

	"github.com/formpulse/backend/srvcerror"
)

const ErrCodeInvalidInput = "invalid_input"

func newErrInvalidInput(msg string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidInput,
		msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}
