package dto

import (
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// RegisterUserRequest carries a new directory entry.
type RegisterUserRequest struct {
	IDNumber   string `json:"id_number" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,userrole"`
	Address    string `json:"address"`
}

// UpdateUserRequest rewrites a directory entry. Password is optional and
// only re-hashed when supplied.
type UpdateUserRequest struct {
	IDNumber   string `json:"id_number" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required,userrole"`
	Address    string `json:"address"`
	Password   string `json:"password"`
}

// UpdateProfileRequest lets a user edit their own entry; the role is not
// self-assignable.
type UpdateProfileRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address"`
	Password   string `json:"password"`
}

// UserResponse is the wire shape of a directory entry.
type UserResponse struct {
	UserID     string `json:"userID"`
	IDNumber   string `json:"id_number"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Address    string `json:"address"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		IDNumber:   u.IDNumber,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       string(u.Role),
		Address:    u.Address,
	}
}

// ListUsersResponse wraps the directory listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
