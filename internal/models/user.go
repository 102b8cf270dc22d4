package models

// User is a stored credential. PasswordHash is a bcrypt hash and is only
// ever written to the users collection, never to API responses.
type User struct {
	Base
	Email        string `json:"email" validate:"required"`
	PasswordHash string `json:"password_hash" validate:"required"`
	Role         string `json:"role" validate:"required"`
	CompanyName  string `json:"company_name"`
}

// UserResponse is the public view of a user returned on login
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}
