// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"food-delivery/delivery"
	"food-delivery/middleware"
	"food-delivery/models"
	"food-delivery/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderController handles order listing and tracking requests
type OrderController struct {
	OrderCollection *mongo.Collection
	Trackers        *delivery.Registry
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, trackers *delivery.Registry) *OrderController {
	orderCollection := client.Database(utils.DatabaseName).Collection("orders")
	return &OrderController{
		OrderCollection: orderCollection,
		Trackers:        trackers,
	}
}

// GetOrders retrieves all orders for the authenticated user
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "You must be logged in", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Cursor error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// trackingView describes the scripted delivery progress for one order
type trackingView struct {
	OrderID string               `json:"order_id"`
	Stage   int                  `json:"stage"`
	Label   string               `json:"label"`
	ETA     string               `json:"eta"`
	Active  bool                 `json:"active"`
	Stages  []delivery.StageInfo `json:"stages"`
}

// GetOrderTracking returns the current delivery stage for an order placed in
// this process. Stages are display-only and are not persisted; after a
// restart there is nothing to resume.
func (oc *OrderController) GetOrderTracking(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	tracker, ok := oc.Trackers.Get(orderID)
	if !ok {
		http.Error(w, "No active tracking for this order", http.StatusNotFound)
		return
	}

	stage := tracker.Stage()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trackingView{
		OrderID: orderID,
		Stage:   int(stage),
		Label:   delivery.Stages[stage].Label,
		ETA:     delivery.Stages[stage].ETA,
		Active:  tracker.Active(),
		Stages:  delivery.Stages,
	})
}
