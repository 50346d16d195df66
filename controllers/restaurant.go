package controllers

import (
	"context"
	"encoding/json"
	"food-delivery/models"
	"food-delivery/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RestaurantController handles restaurant and menu requests
type RestaurantController struct {
	Collection     *mongo.Collection
	MenuCollection *mongo.Collection
}

// NewRestaurantController creates a new RestaurantController
func NewRestaurantController(client *mongo.Client) *RestaurantController {
	db := client.Database(utils.DatabaseName)
	return &RestaurantController{
		Collection:     db.Collection("restaurants"),
		MenuCollection: db.Collection("menu_items"),
	}
}

// GetRestaurants retrieves all restaurants
func (rc *RestaurantController) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	var restaurants []models.Restaurant
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := rc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching restaurants", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var restaurant models.Restaurant
		if err := cursor.Decode(&restaurant); err != nil {
			http.Error(w, "Error decoding restaurant", http.StatusInternalServerError)
			return
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading restaurants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

// GetRestaurantByID retrieves a single restaurant by ID. An unknown ID is a
// plain 404; clients send the user back to the restaurant listing.
func (rc *RestaurantController) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var restaurant models.Restaurant
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = rc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

// GetMenuItems retrieves the menu for a restaurant
func (rc *RestaurantController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	restaurantID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Restaurant must exist before we serve its menu
	count, err := rc.Collection.CountDocuments(ctx, bson.M{"_id": restaurantID})
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	cursor, err := rc.MenuCollection.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		http.Error(w, "Error fetching menu items", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	for cursor.Next(ctx) {
		var item models.MenuItem
		if err := cursor.Decode(&item); err != nil {
			http.Error(w, "Error decoding menu item", http.StatusInternalServerError)
			return
		}
		items = append(items, item)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading menu items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// CreateRestaurant handles adding a new restaurant (Admin only)
func (rc *RestaurantController) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant models.Restaurant
	err := json.NewDecoder(r.Body).Decode(&restaurant)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if restaurant.Name == "" {
		http.Error(w, "Restaurant name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := rc.Collection.InsertOne(ctx, restaurant)
	if err != nil {
		http.Error(w, "Error creating restaurant", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// UpdateRestaurant handles updating a restaurant (Admin only)
func (rc *RestaurantController) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var restaurant models.Restaurant
	err = json.NewDecoder(r.Body).Decode(&restaurant)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"name":      restaurant.Name,
			"cuisine":   restaurant.Cuisine,
			"image_url": restaurant.ImageURL,
			"rating":    restaurant.Rating,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := rc.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, "Error updating restaurant", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// DeleteRestaurant handles deleting a restaurant and its menu (Admin only)
func (rc *RestaurantController) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rc.MenuCollection.DeleteMany(ctx, bson.M{"restaurant_id": id}); err != nil {
		http.Error(w, "Error deleting menu items", http.StatusInternalServerError)
		return
	}

	result, err := rc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting restaurant", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// CreateMenuItem handles adding a menu item to a restaurant (Admin only)
func (rc *RestaurantController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	restaurantID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	err = json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if item.Name == "" || item.Price < 0 {
		http.Error(w, "Menu item needs a name and a non-negative price", http.StatusBadRequest)
		return
	}
	item.RestaurantID = restaurantID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := rc.Collection.CountDocuments(ctx, bson.M{"_id": restaurantID})
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	result, err := rc.MenuCollection.InsertOne(ctx, item)
	if err != nil {
		http.Error(w, "Error creating menu item", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// DeleteMenuItem handles removing a menu item (Admin only)
func (rc *RestaurantController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	itemID, err := primitive.ObjectIDFromHex(params["itemId"])
	if err != nil {
		http.Error(w, "Invalid menu item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := rc.MenuCollection.DeleteOne(ctx, bson.M{"_id": itemID})
	if err != nil {
		http.Error(w, "Error deleting menu item", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}
