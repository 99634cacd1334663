package consumers

import (
	"context"
	"log/slog"

	"innkeep/internal/config"
	"innkeep/internal/database"
	"innkeep/internal/messaging"
	"innkeep/internal/models"
	"innkeep/internal/repository"
	"innkeep/internal/service"
)

// ConsumerService hosts the NATS subscribers and the no-show sweep job.
type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
	noShow   *NoShowJob
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient, nil, nil)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: NewHandlers(repos),
		noShow:   NewNoShowJob(services.Bookings, cfg.NoShowGrace, cfg.SweepInterval),
	}, nil
}

func (cs *ConsumerService) Start(ctx context.Context) error {
	if cs.nats.Enabled() {
		slog.Info("Starting NATS consumers...")

		_, err := cs.nats.SubscribeQueue(models.SubjectReservationCreated, "sweeper", cs.handlers.HandleReservationCreated)
		if err != nil {
			return err
		}

		_, err = cs.nats.SubscribeQueue(models.SubjectReservationStatusChanged, "sweeper", cs.handlers.HandleReservationStatusChanged)
		if err != nil {
			return err
		}

		_, err = cs.nats.SubscribeQueue(models.SubjectReservationDeleted, "sweeper", cs.handlers.HandleReservationDeleted)
		if err != nil {
			return err
		}

		_, err = cs.nats.SubscribeQueue(models.SubjectInventoryLowStock, "sweeper", cs.handlers.HandleInventoryLowStock)
		if err != nil {
			return err
		}
	} else {
		slog.Info("NATS disabled, running sweep job only")
	}

	cs.noShow.Start(ctx)

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.noShow != nil {
		cs.noShow.Stop()
	}

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
