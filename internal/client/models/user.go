// Package models defines the data records WorldQuery works with: the local
// user identity and the country records fetched from the external source.
package models

import "strings"

// User is the current-user record persisted under the "user" key. ID is an
// opaque token assigned at login time; Username is derived from the email
// local part. The password is stored as-is: there is no real credential
// security in this model.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// RegisteredUser is one element of the registered-users list persisted under
// the "users" key. The list is append-only; it exists to enforce sign-up
// uniqueness and to match sign-in credentials.
type RegisteredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials carries the login form input. Password may be empty on the
// quick-auth path, which does not verify against the registry.
type Credentials struct {
	Email    string
	Password string
}

// UsernameFromEmail returns the part of email before '@'; the whole string
// when there is no '@'.
func UsernameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
