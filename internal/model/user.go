package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted because these structs are
// used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags.
//
// Every name/identity column carries a unique index in the schema,
// mirroring the application's signup rules. PasswordHash holds the
// bcrypt digest; the plain password is never persisted or logged.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FirstName    – unique first name.
//  LastName     – unique last name.
//  Username     – unique login name.
//  Email        – unique email address.
//  Gender       – free-form gender string from the signup form.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	Username     string    // users.username
	Email        string    // users.email
	Gender       string    // users.gender
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
