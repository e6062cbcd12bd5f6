package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleManager UserRole = "manager"
)

// User covers both roles with a role discriminant; Address is only
// meaningful for clients. The password field holds a bcrypt hash and must
// stay in the persisted document, so controllers never serialize a User
// directly; they build explicit response payloads.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     UserRole  `json:"role"`
	Address  string    `json:"address,omitempty"`
}

func NewClient(username, passwordHash, address string) *User {
	return &User{
		ID:       uuid.New(),
		Username: username,
		Password: passwordHash,
		Role:     RoleClient,
		Address:  address,
	}
}

func NewManager(username, passwordHash string) *User {
	return &User{
		ID:       uuid.New(),
		Username: username,
		Password: passwordHash,
		Role:     RoleManager,
	}
}

func (u User) EntityID() uuid.UUID { return u.ID }
