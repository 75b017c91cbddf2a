package domain

import "strings"

// Role controls which parts of the register a user can manage.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

// User is an entry in the office's user directory.
type User struct {
	UserID       string `json:"userID"`
	IDNumber     string `json:"idNumber"` // staff ID used for login
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Address      string `json:"address"`
	AuditFields
}

// DisplayName renders the actor name used in audit log entries:
// "{first} {last}" trimmed, or "System" when no name is available.
func (u *User) DisplayName() string {
	if u == nil {
		return "System"
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "System"
	}
	return name
}
