package user

import (
	"context"
	"time"
)

// UserRow is the stored representation of a user account.
type UserRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Name      string    `dynamo:"name"`
	Email     string    `dynamo:"email"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Role      string    `dynamo:"role"`
	Version   int       `dynamo:"version"` // For optimistic locking
	CreatedAt time.Time `dynamo:"created_at"`
}

type UserRepo interface {
	Save(ctx context.Context, row *UserRow) error
	List(ctx context.Context) ([]*UserRow, error)
}
