package main

import (
	"context"
	"flag"
	"log"
	"time"

	"innkeep/internal/validation"
	"innkeep/pkg/gateway"
)

func main() {
	var (
		baseURL  string
		email    string
		password string
	)
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API to check")
	flag.StringVar(&email, "email", "admin@innkeep.local", "Admin email for basic auth")
	flag.StringVar(&password, "password", "admin", "Admin password for basic auth")
	flag.Parse()

	log.Printf("Running smoke checks against: %s", baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	checker := validation.NewChecker(gateway.New(baseURL, email, password))
	if err := checker.CheckAll(ctx); err != nil {
		log.Fatalf("Smoke checks failed: %v", err)
	}

	log.Println("Smoke checks passed")
}
