package models

// User is the identity record returned by the server on registration and
// login. Password is only ever present in mutation payloads; it is
// stripped before the record is persisted anywhere on the client.
type User struct {
	ID       int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Sanitized returns a copy of the user safe for persistence.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Owner returns the key that scopes task operations to this user.
func (u User) Owner() OwnerKey {
	return OwnerKey{Username: u.Username, Email: u.Email}
}

// OwnerKey identifies the user a task list belongs to. The backend keys
// task endpoints by username and email query parameters, so both fields
// are always sent together.
type OwnerKey struct {
	Username string
	Email    string
}
