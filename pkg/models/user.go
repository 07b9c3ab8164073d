package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole gates the mutating routes.
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleCreator UserRole = "Creator"
	RoleUser    UserRole = "User"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	PasswordDigest string             `bson:"password_digest" json:"-"`
	Role           UserRole           `bson:"role" json:"role"`
	DateRegistered time.Time          `bson:"date_registered" json:"date_registered"`
}

type UserRegistrationBody struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserLoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordResetRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetBody struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// PasswordResetToken is a short-lived single-use token mailed to the
// user; only its digest is stored.
type PasswordResetToken struct {
	UserID      primitive.ObjectID `bson:"user_uid" json:"user_uid"`
	TokenDigest string             `bson:"token_digest" json:"token_digest"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt   time.Time          `bson:"expires_at" json:"expires_at"`
}
