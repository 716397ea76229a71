package subm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/formpulse/backend/form"
	"github.com/formpulse/backend/srvcerror"
)

const (
	minRating = 1
	maxRating = 5
)

// Results is the owner's aggregated view of one form.
type Results struct {
	Form        *form.Form
	Charts      []RatingChart
	Comments    []Comment
	Submissions []Submission
}

// GetFormResults runs the results aggregation for the form's owner. The
// ownership check happens before any submission is read; non-owners get
// the same error whether or not the form exists.
func (s *SubmSrvc) GetFormResults(ctx context.Context, formId string, caller uuid.UUID) (*Results, error) {
	f, err := s.formSrvc.GetOwnedForm(ctx, formId, caller)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByForm(ctx, f.UUID.String())
	if err != nil {
		errMsg := fmt.Errorf("error listing submissions: %w", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
	}

	subms := make([]Submission, 0, len(rows))
	for _, row := range rows {
		sm, err := rowToSubm(row)
		if err != nil {
			errMsg := fmt.Errorf("error mapping submission row: %w", err)
			return nil, srvcerror.ErrInternalSE().SetDebug(errMsg)
		}
		subms = append(subms, *sm)
	}

	return &Results{
		Form:        f,
		Charts:      BuildRatingCharts(f, subms),
		Comments:    ExtractComments(subms),
		Submissions: subms,
	}, nil
}

// BuildRatingCharts produces one histogram per rating question, in the
// form's question order. Every bucket 1..5 is present even at count
// zero. Responses whose answer does not parse as an integer in 1..5 are
// silently ignored; that is the documented policy, not an error.
func BuildRatingCharts(f *form.Form, subms []Submission) []RatingChart {
	byQuestion := make(map[string]*RatingChart)
	ordered := make([]*RatingChart, 0)
	for _, q := range f.Questions {
		if q.Kind != form.QuestionKindRating {
			continue
		}
		chart := &RatingChart{
			QuestionID: q.ID,
			Question:   q.Text,
			Ratings:    make(map[int]int, maxRating),
		}
		for v := minRating; v <= maxRating; v++ {
			chart.Ratings[v] = 0
		}
		ordered = append(ordered, chart)
		byQuestion[q.ID] = chart
	}

	for _, sm := range subms {
		for _, resp := range sm.Responses {
			if resp.Kind != form.QuestionKindRating {
				continue
			}
			chart, ok := byQuestion[resp.QuestionID]
			if !ok {
				continue
			}
			rating, err := strconv.Atoi(strings.TrimSpace(resp.Answer))
			if err != nil || rating < minRating || rating > maxRating {
				continue
			}
			chart.Ratings[rating]++
		}
	}

	charts := make([]RatingChart, len(ordered))
	for i, chart := range ordered {
		charts[i] = *chart
	}
	return charts
}

// ExtractComments returns the non-blank text answers in submission
// traversal order; callers may re-sort.
func ExtractComments(subms []Submission) []Comment {
	comments := make([]Comment, 0)
	for _, sm := range subms {
		for _, resp := range sm.Responses {
			if resp.Kind != form.QuestionKindText {
				continue
			}
			if strings.TrimSpace(resp.Answer) == "" {
				continue
			}
			comments = append(comments, Comment{
				Question: resp.Question,
				Comment:  resp.Answer,
				Date:     sm.SubmittedAt,
			})
		}
	}
	return comments
}
