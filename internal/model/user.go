package model

// User represents a registered account.
//
// Passwords are stored as plaintext to match the service contract.
// This is a known security gap, not an oversight; any hardened
// deployment should move to salted hashing before exposing signup
// publicly.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
