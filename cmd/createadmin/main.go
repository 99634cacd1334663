package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"log/slog"

	"innkeep/internal/config"
	"innkeep/internal/database"
	"innkeep/internal/logger"
	"innkeep/internal/models"
	"innkeep/internal/repository"
)

func main() {
	var (
		email    string
		password string
		name     string
		role     string
	)
	flag.StringVar(&email, "email", "admin@innkeep.local", "Admin email")
	flag.StringVar(&password, "password", "admin", "Admin password")
	flag.StringVar(&name, "name", "Administrator", "Display name")
	flag.StringVar(&role, "role", "manager", "Role")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	hash := sha256.Sum256([]byte(password))

	admin := &models.Admin{
		Email:        email,
		PasswordHash: fmt.Sprintf("%x", hash),
		Name:         name,
		Role:         role,
		IsActive:     true,
	}

	adminRepo := repository.NewAdminRepository(db)
	if err := adminRepo.Create(context.Background(), admin); err != nil {
		logger.Fatal("Failed to create admin", "error", err)
	}

	slog.Info("Admin account created", "id", admin.ID, "email", admin.Email, "role", admin.Role)
}
