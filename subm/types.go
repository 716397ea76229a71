package subm

import (
	"time"

	"github.com/google/uuid"
)

// Response is one answered question, denormalized at submission time.
// Question text and kind are echoed from the form as the visitor saw
// it and are never re-derived later.
type Response struct {
	QuestionID string
	Question   string
	Answer     string
	Kind       string
}

// Submission is one respondent's complete answer set. It is created
// exactly once and never mutated.
type Submission struct {
	UUID        uuid.UUID
	FormUUID    uuid.UUID
	Responses   []Response
	SubmittedAt time.Time
}

// RawResponse carries caller-supplied response fields, already coerced
// to text by the transport layer.
type RawResponse struct {
	QuestionID string
	Question   string
	Answer     string
	Type       string
}

// RatingChart is the per-question histogram over the fixed 1..5 scale.
type RatingChart struct {
	QuestionID string      `json:"questionId"`
	Question   string      `json:"question"`
	Ratings    map[int]int `json:"ratings"`
}

// Comment is a non-empty free-text answer with its provenance.
type Comment struct {
	Question string    `json:"question"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}
