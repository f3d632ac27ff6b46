// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the single entity in the system, representing one registered account.
// Password holds the plaintext credential only while a signup request is in
// flight; once the store has persisted the record it always holds the bcrypt
// digest, never recoverable plaintext.
type User struct {
	ID        string    // Hex representation of the document ObjectID.
	Username  string    // Login identifier, unique across all users.
	Email     string    // Contact address, unique across all users.
	Password  string    // Plaintext before Create, bcrypt digest after.
	PhoneNum  string    // Exactly 10 decimal digits.
	Location  string    // Exactly 5 decimal digits (postal code).
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
