package model

// User represents a row of the users table. Only the email is read.
type User struct {
	Email string `json:"email"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	UserEmail string `json:"userEmail"`
}
