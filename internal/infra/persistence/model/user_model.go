// Package model contains the persistence representations of domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roster/internal/domain/entity"
)

// UserModel mirrors one document in the 'users' collection. Uniqueness of
// username and email is enforced by unique indexes created at startup, so it
// holds under concurrent signups from multiple processes.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"` // Always a bcrypt digest, never plaintext.
	PhoneNum  string             `bson:"phoneNum"`
	Location  string             `bson:"location"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName is the 'users' collection this model maps to.
const CollectionName = "users"

// ToUserDomain converts a stored document back to a pure domain entity.
func ToUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID.Hex(),
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.Password,
		PhoneNum:  data.PhoneNum,
		Location:  data.Location,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromUserDomain converts a domain User entity to a document for persistence.
// The ID is left empty so the store assigns a fresh ObjectID on insert.
func FromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		Username: data.Username,
		Email:    data.Email,
		Password: data.Password,
		PhoneNum: data.PhoneNum,
		Location: data.Location,
	}
}
