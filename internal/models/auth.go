package models

// SignupRequest is the payload for creating a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for obtaining a bearer token.
// The password travels with the request but credential verification is
// delegated to the identity provider on the client side.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is the identity provider's record of a created user.
type Account struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
