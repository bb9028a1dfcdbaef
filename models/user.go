package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "Admin"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Username  string             `bson:"username,omitempty" json:"username,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`

	// Password reset state, written by the forgot-password flow and
	// cleared once the token is used.
	ResetToken          string    `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiresAt time.Time `bson:"resetTokenExpiresAt,omitempty" json:"-"`

	// Login throttling state.
	WrongPasswordCount int       `bson:"wrongPasswordCount,omitempty" json:"-"`
	BlockedUntil       time.Time `bson:"blockedUntil,omitempty" json:"-"`
}
