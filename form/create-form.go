package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/formpulse/backend/srvcerror"
)

// CreateForm validates and stores a new form. The form starts active
// with a freshly assigned access code.
func (s *FormSrvc) CreateForm(ctx context.Context, p CreateFormParams) (*Form, error) {
	if p.Title == "" {
		return nil, newErrTitleRequired()
	}
	if len(p.Questions) == 0 {
		return nil, newErrQuestionsRequired()
	}

	questions := make([]QuestionRow, len(p.Questions))
	for i, q := range p.Questions {
		if q.Text == "" {
			return nil, newErrQuestionTextRequired()
		}
		kind := q.Kind
		if kind == "" {
			kind = QuestionKindRating
		}
		if kind != QuestionKindRating && kind != QuestionKindText {
			return nil, newErrQuestionKindInvalid()
		}
		questions[i] = QuestionRow{
			ID:       uuid.New().String(),
			Text:     q.Text,
			Kind:     kind,
			Required: q.Required,
		}
	}

	code, err := s.assignAccessCode(ctx)
	if err != nil {
		if errors.Is(err, errAccessCodeAttemptsExhausted) {
			return nil, newErrAccessCodeExhausted().SetDebug(err)
		}
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	row := &FormRow{
		Uuid:        uuid.New().String(),
		Title:       p.Title,
		Description: p.Description,
		Questions:   questions,
		Active:      true,
		OwnerUuid:   p.OwnerUUID.String(),
		AccessCode:  code,
		Version:     0,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving form: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}

	return rowToForm(row)
}
