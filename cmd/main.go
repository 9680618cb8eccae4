package main

import (
	"log"
	"os"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/routes"
)

func main() {
	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
