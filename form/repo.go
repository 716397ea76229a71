package form

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type QuestionRow struct {
	ID       string `dynamo:"id"`
	Text     string `dynamo:"question"`
	Kind     string `dynamo:"kind"`
	Required bool   `dynamo:"required"`
}

type FormRow struct {
	Uuid        string        `dynamo:"uuid,hash"` // Primary key
	Title       string        `dynamo:"title"`
	Description string        `dynamo:"description"`
	Questions   []QuestionRow `dynamo:"questions"`
	Active      bool          `dynamo:"active"`
	OwnerUuid   string        `dynamo:"owner_uuid"`
	AccessCode  string        `dynamo:"access_code"`
	Version     int           `dynamo:"version"` // For optimistic locking
	CreatedAt   time.Time     `dynamo:"created_at"`
}

// FormRepo is the persistence boundary of the form definition store.
// Lookups return (nil, nil) when no matching form exists.
type FormRepo interface {
	Save(ctx context.Context, row *FormRow) error
	ListByOwner(ctx context.Context, ownerUuid string) ([]*FormRow, error)
	GetActiveByCode(ctx context.Context, code string) (*FormRow, error)
	GetActiveByID(ctx context.Context, id string) (*FormRow, error)
	// GetOwned resolves a form only when it belongs to ownerUuid,
	// regardless of its active flag.
	GetOwned(ctx context.Context, id string, ownerUuid string) (*FormRow, error)
	// GetByCode ignores the active flag; used for collision checks.
	GetByCode(ctx context.Context, code string) (*FormRow, error)
}

func rowToForm(row *FormRow) (*Form, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, err
	}
	owner, err := uuid.Parse(row.OwnerUuid)
	if err != nil {
		return nil, err
	}
	questions := make([]Question, len(row.Questions))
	for i, q := range row.Questions {
		questions[i] = Question{
			ID:       q.ID,
			Text:     q.Text,
			Kind:     q.Kind,
			Required: q.Required,
		}
	}
	return &Form{
		UUID:        id,
		Title:       row.Title,
		Description: row.Description,
		Questions:   questions,
		Active:      row.Active,
		OwnerUUID:   owner,
		AccessCode:  row.AccessCode,
		CreatedAt:   row.CreatedAt,
	}, nil
}
