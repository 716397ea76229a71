package form

// FormSrvc implements the form definition store and lifecycle on top of
// a FormRepo.
type FormSrvc struct {
	repo FormRepo
}

func NewFormSrvc(repo FormRepo) *FormSrvc {
	return &FormSrvc{repo: repo}
}
