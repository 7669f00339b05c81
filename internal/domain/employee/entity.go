package employee

import (
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
)

// Employee is a user account plus the profile fields the account does not
// carry. The two are created and deleted together.
type Employee struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Role       user.Role
	Position   *string
	Department *string
	Phone      *string
	JoinDate   *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
