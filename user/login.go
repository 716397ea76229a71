package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and returns the matching user. A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *UserSrvc) Login(ctx context.Context, email string, password string) (*User, error) {
	allUsers, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, srvcErrInternal().SetDebug(errMsg)
	}

	for _, u := range allUsers {
		if u.Email == email {
			err = bcrypt.CompareHashAndPassword(u.BcryptPwd, []byte(password))
			if err == nil {
				id, err := uuid.Parse(u.Uuid)
				if err != nil {
					errMsg := fmt.Errorf("error parsing stored user uuid: %w", err)
					return nil, srvcErrInternal().SetDebug(errMsg)
				}
				return &User{
					UUID:  id,
					Name:  u.Name,
					Email: u.Email,
					Role:  u.Role,
				}, nil
			}
		}
	}

	return nil, newErrInvalidCredentials()
}
