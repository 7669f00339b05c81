package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, approves requests
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve holiday/compensation requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
