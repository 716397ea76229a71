package user

import (
	"fmt"
	"net/http"

	"github.com/formpulse/backend/srvcerror"
)

const ErrCodeNameRequired = "name_required"

func newErrNameRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameRequired,
		"name is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email address is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailTooLong = "email_too_long"

func newErrEmailTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailTooLong,
		fmt.Sprintf("email must not exceed %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"an account with this email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		fmt.Sprintf("password must not exceed %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeRoleInvalid = "role_invalid"

func newErrRoleInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoleInvalid,
		"role must be either admin or client",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func srvcErrInternal() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"email or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
