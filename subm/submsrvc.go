package subm

import "github.com/formpulse/backend/form"

// SubmSrvc implements submission intake and results aggregation. Form
// resolution goes through the form service so that the not-found and
// ownership policies live in one place.
type SubmSrvc struct {
	repo     SubmRepo
	formSrvc *form.FormSrvc
}

func NewSubmSrvc(repo SubmRepo, formSrvc *form.FormSrvc) *SubmSrvc {
	return &SubmSrvc{
		repo:     repo,
		formSrvc: formSrvc,
	}
}
