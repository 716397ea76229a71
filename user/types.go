package user

import "github.com/google/uuid"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	UUID  uuid.UUID
	Name  string
	Email string
	Role  string
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to "client" when empty
}
