package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant represents a restaurant available for ordering
type Restaurant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Cuisine  string             `bson:"cuisine" json:"cuisine"`
	ImageURL string             `bson:"image_url" json:"image_url"`
	Rating   float64            `bson:"rating" json:"rating"`
}
