package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/formpulse/backend/srvcerror"
)

// GetPublicForm resolves an active form by its access code. Deactivated
// and absent forms are indistinguishable to the caller.
func (s *FormSrvc) GetPublicForm(ctx context.Context, accessCode string) (*Form, error) {
	if accessCode == "" {
		return nil, NewErrFormNotFound()
	}
	row, err := s.repo.GetActiveByCode(ctx, accessCode)
	if err != nil {
		errMsg := fmt.Errorf("error looking up form by code: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, NewErrFormNotFound()
	}
	return rowToForm(row)
}

// GetActiveForm resolves an active form by id for the submission path.
func (s *FormSrvc) GetActiveForm(ctx context.Context, formId string) (*Form, error) {
	row, err := s.repo.GetActiveByID(ctx, formId)
	if err != nil {
		errMsg := fmt.Errorf("error looking up form: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, NewErrFormNotFound()
	}
	return rowToForm(row)
}

// GetOwnedForm resolves a form only when the caller owns it. A form
// owned by someone else and a missing form both come back as an access
// denied error, mirroring the admin surface of the original routes.
func (s *FormSrvc) GetOwnedForm(ctx context.Context, formId string, owner uuid.UUID) (*Form, error) {
	row, err := s.repo.GetOwned(ctx, formId, owner.String())
	if err != nil {
		errMsg := fmt.Errorf("error looking up owned form: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, NewErrFormAccessDenied()
	}
	return rowToForm(row)
}
