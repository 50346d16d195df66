package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a dish on a restaurant's menu. Items are immutable from
// the customer's point of view; the cart snapshots name and price on add.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
	Name         string             `bson:"name" json:"name"`
	Price        float64            `bson:"price" json:"price"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
}
