package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/formpulse/backend/srvcerror"
)

// ToggleActive flips the active flag of an owned form and returns the
// new state. Stored submissions are unaffected; a deactivated form
// keeps its history retrievable by its owner.
func (s *FormSrvc) ToggleActive(ctx context.Context, formId string, owner uuid.UUID) (bool, error) {
	row, err := s.repo.GetOwned(ctx, formId, owner.String())
	if err != nil {
		errMsg := fmt.Errorf("error looking up owned form: %w", err)
		return false, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return false, NewErrFormAccessDenied()
	}

	row.Active = !row.Active
	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving form: %w", err)
		return false, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}

	return row.Active, nil
}
