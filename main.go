package main

import (
	"context"
	"log"
	"net/http"

	"lingerie-shop/config"
	"lingerie-shop/database"
	"lingerie-shop/handlers"
	"lingerie-shop/router"
)

func main() {
	cfg := config.LoadConfig()

	// A missing or unreachable database degrades the diagnostic endpoint
	// but must not stop the server from coming up.
	var store database.Store
	if mongoStore, err := database.Connect(cfg); err != nil {
		log.Printf("Warning: could not connect to MongoDB: %v", err)
	} else {
		log.Println("Connected to MongoDB!")
		store = mongoStore
		defer mongoStore.Disconnect(context.TODO())
	}

	h := handlers.NewHandler(store, cfg)
	routes := router.SetupRoutes(h)

	log.Printf("Server listening on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router.WithCORS(routes)))
}
