package main

import (
	"go-ecommerce-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

// @title E-Commerce API
// @version 1.0
// @description API for managing products and orders in an e-commerce system

// @host localhost:3000
// @BasePath /api

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
}
