// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
// The validate tags carry the field patterns the store relies on:
// a 10-digit phone number and a 5-digit postal code.
type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
	PhoneNum string `json:"phoneNum" validate:"required,len=10,number"`
	Location string `json:"location" validate:"required,len=5,number"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created user. Handlers must not echo any of
// it back to the caller beyond a confirmation message.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	Token string
}

// UserUsecase defines the interface for the credential workflow.
// This is the contract that the delivery layer (HTTP handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
