package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a line item snapshot copied from the cart at confirmation time
type OrderItem struct {
	ItemID   primitive.ObjectID `bson:"item_id" json:"item_id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed delivery order
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	DeliveryFee  float64            `bson:"delivery_fee" json:"delivery_fee"`
	Total        float64            `bson:"total" json:"total"`
	DeliveryLat  float64            `bson:"delivery_lat" json:"delivery_lat"`
	DeliveryLng  float64            `bson:"delivery_lng" json:"delivery_lng"`
	Status       string             `bson:"status" json:"status"` // e.g., "confirmed"
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
