// main.go
package main

import (
	"context"
	"fmt"
	"food-delivery/cart"
	"food-delivery/controllers"
	"food-delivery/delivery"
	"food-delivery/middleware"
	"food-delivery/routes"
	"food-delivery/utils"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Checkout sessions and the sign-out denylist live in Redis when
	// REDIS_URL is set; otherwise they stay in process memory.
	var sessions cart.Store = cart.NewMemoryStore()
	var denylist utils.Denylist = utils.NewMemoryDenylist()
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := utils.ConnectRedis(redisURL)
		if err != nil {
			log.Fatal("Error connecting to Redis:", err)
		}
		sessions = cart.NewRedisStore(rdb, cart.DefaultSessionTTL)
		denylist = utils.NewRedisDenylist(rdb)
		log.Println("Connected to Redis")
	}
	middleware.TokenDenylist = denylist

	// Delivery trackers are per-process; stages are not persisted
	trackers := delivery.NewRegistry()

	// Initialize controllers
	userController := controllers.NewUserController(client, emailService, denylist)
	restaurantController := controllers.NewRestaurantController(client)
	checkoutController := controllers.NewCheckoutController(client, sessions, trackers, emailService)
	orderController := controllers.NewOrderController(client, trackers)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	// Register routes
	routes.RegisterRoutes(router, userController, restaurantController, checkoutController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
