package dto

// LoginRequest authenticates by staff ID number and password.
type LoginRequest struct {
	IDNumber string `json:"id_number" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token plus the user payload the front
// end keeps for display and role-based navigation.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
