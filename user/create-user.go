package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 320
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// CreateUser registers a new account. Email addresses are unique; the
// role defaults to "client".
func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if p.Name == "" {
		return nil, newErrNameRequired()
	}
	if len(p.Email) > maxEmailLength {
		return nil, newErrEmailTooLong(maxEmailLength)
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, newErrEmailInvalid()
	}
	if len(p.Password) < minPasswordLength {
		return nil, newErrPasswordTooShort(minPasswordLength)
	}
	if len(p.Password) > maxPasswordLength {
		return nil, newErrPasswordTooLong(maxPasswordLength)
	}

	role := p.Role
	if role == "" {
		role = RoleClient
	}
	if role != RoleAdmin && role != RoleClient {
		return nil, newErrRoleInvalid()
	}

	allUsers, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, srvcErrInternal().SetDebug(errMsg)
	}
	for _, u := range allUsers {
		if u.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		errMsg := fmt.Errorf("error hashing password: %w", err)
		return nil, srvcErrInternal().SetDebug(errMsg)
	}

	id := uuid.New()
	row := &UserRow{
		Uuid:      id.String(),
		Name:      p.Name,
		Email:     p.Email,
		BcryptPwd: bcryptPwd,
		Role:      role,
		Version:   0,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving user: %w", err)
		return nil, srvcErrInternal().SetDebug(errMsg)
	}

	return &User{
		UUID:  id,
		Name:  p.Name,
		Email: p.Email,
		Role:  role,
	}, nil
}
