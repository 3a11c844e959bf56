package models

// User is the identity record returned by the remote auth service. The
// storefront treats it as opaque apart from the contact fields it surfaces.
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// LoginRequest for the credential exchange
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"athlete@panther.fit"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest for account creation. The same credentials are replayed
// into login once the account exists.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
}

// TokenResponse is the body of a successful POST {base}/token/
type TokenResponse struct {
	Access string `json:"access"`
	User   User   `json:"user"`
}

// SessionResponse is the public view of the auth store
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
	User     *User  `json:"user,omitempty"`
}
