package model

import "time"

// User represents an application user record as stored in the `users` table.
// Each field corresponds to a column in the database.  The json tags are
// omitted here because these structs are primarily used internally by the
// repository layer; handlers define separate response types with appropriate
// JSON tags so the password hash can never leak into a response body.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name (letters and spaces only, enforced at registration).
//  Email        – unique email address, stored lower‑cased.
//  PasswordHash – bcrypt hashed password; the plaintext is never persisted.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update (bumped on password reset).
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
