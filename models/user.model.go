package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered customer or admin
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Password          string             `bson:"password,omitempty" json:"-"`
	Role              string             `bson:"role" json:"role"` // "user" or "admin"
	IsVerified        bool               `bson:"is_verified" json:"is_verified"`
	VerificationToken string             `bson:"verification_token" json:"-"`
}
