package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/formpulse/backend/srvcerror"
)

// CreateSubmission validates and persists one anonymous answer set
// against an active form. It returns no submission handle; callers only
// need the acknowledgement. There is deliberately no duplicate
// detection: every call produces an independent record, which is what
// makes concurrent submits safe without synchronization.
func (s *SubmSrvc) CreateSubmission(ctx context.Context, formId string, responses []RawResponse) error {
	if formId == "" {
		return newErrInvalidInput("formId is required")
	}
	if len(responses) == 0 {
		return newErrInvalidInput("responses must be a non-empty list")
	}
	for _, r := range responses {
		// The answer may be empty: skipped ratings and blank text
		// answers are filtered at aggregation time, not rejected here.
		if r.QuestionID == "" || r.Question == "" || r.Type == "" {
			return newErrInvalidInput("every response needs questionId, question and type")
		}
	}

	// Absent and deactivated forms surface identically as not found.
	f, err := s.formSrvc.GetActiveForm(ctx, formId)
	if err != nil {
		return err
	}

	now := time.Now()
	submUuid := uuid.New().String()

	rows := make([]ResponseRow, len(responses))
	for i, r := range responses {
		rows[i] = ResponseRow{
			QuestionID: r.QuestionID,
			Question:   r.Question,
			Answer:     r.Answer,
			Kind:       r.Type,
		}
	}

	row := &SubmRow{
		FormUuid:         f.UUID.String(),
		SortKey:          submSortKey(now, submUuid),
		SubmUuid:         submUuid,
		Responses:        rows,
		CreatedAtRfc3339: now.UTC().Format(sortKeyTimeLayout),
	}

	if err := s.repo.Store(ctx, row); err != nil {
		errMsg := fmt.Errorf("error storing submission: %w", err)
		return srvcerror.ErrInternalSE().SetDebug(errMsg)
	}

	return nil
}
