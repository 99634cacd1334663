package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"innkeep/internal/config"
	"innkeep/internal/database"
	"innkeep/internal/logger"
	"innkeep/internal/models"
	"innkeep/internal/repository"
	"innkeep/internal/search"
)

func main() {
	var timeout int
	flag.IntVar(&timeout, "timeout", 300, "Overall timeout in seconds")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if !cfg.Elasticsearch.Enabled {
		logger.Fatal("Search indexing is disabled, nothing to rebuild")
	}

	slog.Info("Starting search index rebuild")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	searchClient, err := search.NewClient(cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	repos := repository.NewRepositories(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := reindex(ctx, repos, searchClient); err != nil {
		logger.Fatal("Index rebuild failed", "error", err)
	}

	slog.Info("Search index rebuild completed")
}

func reindex(ctx context.Context, repos *repository.Repositories, searchClient *search.Client) error {
	start := time.Now()

	bookings, err := repos.Bookings.List(ctx, models.ListBookingsParams{})
	if err != nil {
		return err
	}

	for _, b := range bookings {
		doc := search.Document{
			ID:        b.ID,
			Entity:    "booking",
			Name:      b.GuestName,
			Reference: b.ReferenceCode,
			Location:  b.RoomNumber,
			Status:    b.Status,
			Date:      b.CheckIn,
		}
		if err := searchClient.Index(ctx, doc); err != nil {
			return err
		}
	}

	events, err := repos.Events.List(ctx, models.ListBookingsParams{})
	if err != nil {
		return err
	}

	for _, e := range events {
		doc := search.Document{
			ID:        e.ID,
			Entity:    "event",
			Name:      e.ClientName,
			Reference: e.ReferenceCode,
			Location:  e.Venue,
			Status:    e.Status,
			Date:      e.Date,
		}
		if err := searchClient.Index(ctx, doc); err != nil {
			return err
		}
	}

	slog.Info("Indexed documents",
		"bookings", len(bookings),
		"events", len(events),
		"duration", time.Since(start),
	)
	return nil
}
