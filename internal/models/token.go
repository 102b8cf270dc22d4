package models

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Identity is the authenticated principal resolved from credentials
type Identity struct {
	UserID      string
	Email       string
	Role        string
	CompanyName string
}
