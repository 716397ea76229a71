package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/formpulse/backend/srvcerror"
)

func (s *FormSrvc) ListOwnForms(ctx context.Context, owner uuid.UUID) ([]Form, error) {
	rows, err := s.repo.ListByOwner(ctx, owner.String())
	if err != nil {
		errMsg := fmt.Errorf("error listing forms: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}

	forms := make([]Form, 0, len(rows))
	for _, row := range rows {
		f, err := rowToForm(row)
		if err != nil {
			errMsg := fmt.Errorf("error mapping form row: %w", err)
			return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
		}
		forms = append(forms, *f)
	}
	return forms, nil
}
