package identity

import (
	"strings"

	"github.com/zapateria/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role restricts what a signed-in user may do
type Role string

const (
	// RoleAdmin has full access, withdrawals included
	RoleAdmin Role = "admin"
	// RoleSeller manages stock and sales but cannot settle withdrawals
	RoleSeller Role = "seller"
)

// IsValid returns true if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSeller
}

// User is a store account that can sign in to the backoffice
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(username, password string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
