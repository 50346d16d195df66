// routes/routes.go
package routes

import (
	"food-delivery/controllers"
	"food-delivery/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, restaurantController *controllers.RestaurantController, checkoutController *controllers.CheckoutController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/verify", userController.VerifyEmail).Methods("GET")

	// Restaurant routes
	router.HandleFunc("/restaurants", restaurantController.GetRestaurants).Methods("GET")
	router.HandleFunc("/restaurants/{id}", restaurantController.GetRestaurantByID).Methods("GET")
	router.HandleFunc("/restaurants/{id}/menu", restaurantController.GetMenuItems).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/signout", userController.SignOut).Methods("POST")

	// Checkout routes
	protected.HandleFunc("/checkout/{restaurantId}", checkoutController.GetCheckout).Methods("GET")
	protected.HandleFunc("/checkout/{restaurantId}/items", checkoutController.AddItem).Methods("POST")
	protected.HandleFunc("/checkout/{restaurantId}/items/{itemId}", checkoutController.UpdateQuantity).Methods("PATCH")
	protected.HandleFunc("/checkout/{restaurantId}/location", checkoutController.SetLocation).Methods("POST")
	protected.HandleFunc("/checkout/{restaurantId}/confirm", checkoutController.ConfirmOrder).Methods("POST")

	// Order routes
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}/tracking", orderController.GetOrderTracking).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/restaurants").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", restaurantController.CreateRestaurant).Methods("POST")
	admin.HandleFunc("/{id}", restaurantController.UpdateRestaurant).Methods("PUT")
	admin.HandleFunc("/{id}", restaurantController.DeleteRestaurant).Methods("DELETE")
	admin.HandleFunc("/{id}/menu", restaurantController.CreateMenuItem).Methods("POST")
	admin.HandleFunc("/{id}/menu/{itemId}", restaurantController.DeleteMenuItem).Methods("DELETE")
}
