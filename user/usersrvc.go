package user

// UserSrvc implements account registration and login on top of a
// UserRepo.
type UserSrvc struct {
	repo UserRepo
}

func NewUserSrvc(repo UserRepo) *UserSrvc {
	return &UserSrvc{repo: repo}
}
