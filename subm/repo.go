package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ResponseRow struct {
	QuestionID string `dynamo:"question_id"`
	Question   string `dynamo:"question"`
	Answer     string `dynamo:"answer"`
	Kind       string `dynamo:"kind"`
}

// SubmRow is keyed by the parent form so that all submissions of one
// form live in a single partition, ordered by the creation-time sort
// key.
type SubmRow struct {
	FormUuid string `dynamo:"form_uuid,hash"` // partition key
	SortKey  string `dynamo:"sort_key,range"` // <created_at_rfc3339_utc>#<subm_uuid>

	SubmUuid  string        `dynamo:"subm_uuid"`
	Responses []ResponseRow `dynamo:"responses"`

	CreatedAtRfc3339 string `dynamo:"created_at_rfc3339_utc"`
}

// SubmRepo is the persistence boundary of the submission store. Rows
// are written once and never updated or deleted.
type SubmRepo interface {
	Store(ctx context.Context, row *SubmRow) error
	// ListByForm returns submissions in creation order.
	ListByForm(ctx context.Context, formUuid string) ([]*SubmRow, error)
}

// sortKeyTimeLayout is fixed-width: RFC3339Nano trims trailing zeros
// from the fraction, which would make lexicographic key order disagree
// with chronological order inside the same second.
const sortKeyTimeLayout = "2006-01-02T15:04:05.000000000Z"

func submSortKey(createdAt time.Time, submUuid string) string {
	return fmt.Sprintf("%s#%s", createdAt.UTC().Format(sortKeyTimeLayout), submUuid)
}

func rowToSubm(row *SubmRow) (*Submission, error) {
	id, err := uuid.Parse(row.SubmUuid)
	if err != nil {
		return nil, err
	}
	formId, err := uuid.Parse(row.FormUuid)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAtRfc3339)
	if err != nil {
		return nil, err
	}
	responses := make([]Response, len(row.Responses))
	for i, r := range row.Responses {
		responses[i] = Response{
			QuestionID: r.QuestionID,
			Question:   r.Question,
			Answer:     r.Answer,
			Kind:       r.Kind,
		}
	}
	return &Submission{
		UUID:        id,
		FormUUID:    formId,
		Responses:   responses,
		SubmittedAt: createdAt,
	}, nil
}
