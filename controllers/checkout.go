package controllers

import (
	"context"
	"encoding/json"
	"food-delivery/cart"
	"food-delivery/delivery"
	"food-delivery/middleware"
	"food-delivery/models"
	"food-delivery/utils"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CheckoutController drives one checkout session per user and restaurant:
// cart mutations, the delivery estimate, and order confirmation.
type CheckoutController struct {
	Sessions        cart.Store
	Estimator       *delivery.Estimator
	Locator         *delivery.Resolver
	Trackers        *delivery.Registry
	AdvanceInterval time.Duration

	OrderCollection      *mongo.Collection
	RestaurantCollection *mongo.Collection
	MenuCollection       *mongo.Collection
	UserCollection       *mongo.Collection
	EmailService         *utils.EmailService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(client *mongo.Client, sessions cart.Store, trackers *delivery.Registry, emailService *utils.EmailService) *CheckoutController {
	db := client.Database(utils.DatabaseName)
	return &CheckoutController{
		Sessions:             sessions,
		Estimator:            delivery.NewEstimator(),
		Locator:              &delivery.Resolver{},
		Trackers:             trackers,
		AdvanceInterval:      delivery.DefaultAdvanceInterval,
		OrderCollection:      db.Collection("orders"),
		RestaurantCollection: db.Collection("restaurants"),
		MenuCollection:       db.Collection("menu_items"),
		UserCollection:       db.Collection("users"),
		EmailService:         emailService,
	}
}

// checkoutView is the session summary returned to the client
type checkoutView struct {
	RestaurantID string             `json:"restaurant_id"`
	Lines        []cart.Line        `json:"lines"`
	Subtotal     float64            `json:"subtotal"`
	Location     *delivery.LatLng   `json:"location,omitempty"`
	Estimate     *delivery.Estimate `json:"estimate,omitempty"`
	DeliveryFee  float64            `json:"delivery_fee"`
	Total        float64            `json:"total"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func newCheckoutView(restaurantID string, s *cart.Session) checkoutView {
	fee := s.DeliveryFee()
	return checkoutView{
		RestaurantID: restaurantID,
		Lines:        s.Cart.Lines,
		Subtotal:     roundCents(s.Cart.Subtotal()),
		Location:     s.Location,
		Estimate:     s.Estimate,
		DeliveryFee:  fee,
		Total:        roundCents(s.Cart.Total(fee)),
	}
}

func (cc *CheckoutController) session(r *http.Request) (*utils.Claims, string, string, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		return nil, "", "", false
	}
	restaurantID := mux.Vars(r)["restaurantId"]
	return claims, restaurantID, cart.SessionKey(claims.UserID, restaurantID), true
}

// GetCheckout returns the current checkout session for a restaurant
func (cc *CheckoutController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	_, restaurantID, key, ok := cc.session(r)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	session, err := cc.Sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Error loading checkout session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCheckoutView(restaurantID, session))
}

// AddItem adds one unit of a menu item to the cart. The item must belong to
// the restaurant being checked out; its name and price are snapshotted into
// the cart line.
func (cc *CheckoutController) AddItem(w http.ResponseWriter, r *http.Request) {
	_, restaurantID, key, ok := cc.session(r)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ItemID == "" {
		// "Order This Item" deep links pass the item as a query parameter
		body.ItemID = r.URL.Query().Get("itemId")
	}

	itemID, err := primitive.ObjectIDFromHex(body.ItemID)
	if err != nil {
		http.Error(w, "Invalid menu item ID", http.StatusBadRequest)
		return
	}
	restID, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.MenuItem
	err = cc.MenuCollection.FindOne(ctx, bson.M{"_id": itemID, "restaurant_id": restID}).Decode(&item)
	if err != nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	session, err := cc.Sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Error loading checkout session", http.StatusInternalServerError)
		return
	}
	session.RestaurantID = restaurantID
	session.Cart.AddItem(item.ID.Hex(), item.Name, item.Price)

	if err := cc.Sessions.Save(r.Context(), key, session); err != nil {
		http.Error(w, "Error saving checkout session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCheckoutView(restaurantID, session))
}

// UpdateQuantity adjusts a cart line's quantity by a signed delta. Quantities
// floor at zero and a zeroed line is removed; unknown items are a no-op.
func (cc *CheckoutController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	_, restaurantID, key, ok := cc.session(r)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}
	itemID := mux.Vars(r)["itemId"]

	var body struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	session, err := cc.Sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Error loading checkout session", http.StatusInternalServerError)
		return
	}
	session.Cart.ChangeQuantity(itemID, body.Delta)

	if err := cc.Sessions.Save(r.Context(), key, session); err != nil {
		http.Error(w, "Error saving checkout session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCheckoutView(restaurantID, session))
}

// SetLocation records the delivery location for this checkout and generates
// the delivery estimate. Clients may send their own coordinates; otherwise
// the position provider is consulted and on failure the fixed fallback pair
// is used. Obtaining a location never fails.
func (cc *CheckoutController) SetLocation(w http.ResponseWriter, r *http.Request) {
	_, restaurantID, key, ok := cc.session(r)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	var body struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	var loc delivery.LatLng
	if body.Lat != nil && body.Lng != nil {
		loc = delivery.LatLng{Lat: *body.Lat, Lng: *body.Lng}
	} else {
		loc = cc.Locator.Resolve(r.Context())
	}

	session, err := cc.Sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Error loading checkout session", http.StatusInternalServerError)
		return
	}
	estimate := cc.Estimator.Generate()
	session.Location = &loc
	session.Estimate = &estimate

	if err := cc.Sessions.Save(r.Context(), key, session); err != nil {
		http.Error(w, "Error saving checkout session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCheckoutView(restaurantID, session))
}

// ConfirmOrder places the order. Preconditions are checked before any remote
// call: the cart must be non-empty and a delivery location must have been
// obtained. On a remote failure the cart is left untouched; it is cleared
// only after the order record has been created.
func (cc *CheckoutController) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	claims, restaurantID, key, ok := cc.session(r)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	session, err := cc.Sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Error loading checkout session", http.StatusInternalServerError)
		return
	}
	if session.Cart.IsEmpty() {
		http.Error(w, "Please add items to your cart", http.StatusBadRequest)
		return
	}
	if !session.HasLocation() {
		http.Error(w, "Please get your location for delivery", http.StatusBadRequest)
		return
	}

	restID, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	err = cc.RestaurantCollection.FindOne(ctx, bson.M{"_id": restID}).Decode(&restaurant)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	var user models.User
	err = cc.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	items := make([]models.OrderItem, 0, len(session.Cart.Lines))
	for _, line := range session.Cart.Lines {
		lineID, err := primitive.ObjectIDFromHex(line.ItemID)
		if err != nil {
			http.Error(w, "Invalid cart line", http.StatusBadRequest)
			return
		}
		items = append(items, models.OrderItem{
			ItemID:   lineID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	fee := session.DeliveryFee()
	order := models.Order{
		UserID:       userID,
		RestaurantID: restID,
		Items:        items,
		Subtotal:     roundCents(session.Cart.Subtotal()),
		DeliveryFee:  fee,
		Total:        roundCents(session.Cart.Total(fee)),
		DeliveryLat:  session.Location.Lat,
		DeliveryLng:  session.Location.Lng,
		Status:       "confirmed",
		CreatedAt:    time.Now(),
	}

	result, err := cc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		http.Error(w, "There was an error placing your order", http.StatusInternalServerError)
		return
	}
	orderID := result.InsertedID.(primitive.ObjectID)
	order.ID = orderID

	// The checkout session ends with the order; a failure to clear it is
	// logged but does not fail the confirmed order.
	if err := cc.Sessions.Delete(r.Context(), key); err != nil {
		log.Printf("Failed to clear checkout session %s: %v", key, err)
	}

	cc.Trackers.Start(orderID.Hex(), cc.AdvanceInterval)

	go func(email string) {
		if err := cc.EmailService.SendOrderConfirmationEmail(email, order, restaurant.Name); err != nil {
			log.Printf("Failed to send email to %s: %v", email, err)
		}
	}(user.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order_id": orderID,
		"total":    order.Total,
		"message":  "Order placed successfully",
	})
}
