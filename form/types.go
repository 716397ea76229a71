package form

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionKindRating = "rating"
	QuestionKindText   = "text"
)

// Question is a single entry of a form. Rating questions use the fixed
// 1..5 scale.
type Question struct {
	ID       string
	Text     string
	Kind     string
	Required bool
}

type Form struct {
	UUID        uuid.UUID
	Title       string
	Description string
	Questions   []Question
	Active      bool
	OwnerUUID   uuid.UUID
	AccessCode  string
	CreatedAt   time.Time
}

type QuestionInput struct {
	Text     string
	Kind     string // defaults to rating when empty
	Required bool
}

type CreateFormParams struct {
	OwnerUUID   uuid.UUID
	Title       string
	Description string
	Questions   []QuestionInput
}
