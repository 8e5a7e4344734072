package main

import (
	"sudagala/internal/bookings/handler"
	"sudagala/internal/bookings/repository"
	"sudagala/internal/bookings/service"
	"sudagala/internal/bookings/validator"
	"sudagala/internal/pricing"
	"sudagala/pkg/app"
	"sudagala/pkg/config"
	"sudagala/pkg/kafka"
	kafkaconfig "sudagala/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")

	producer := initProducer(cfg)
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close event producer", "error", err)
			}
		}()
	}

	bookingService := initServices(cfg, producer)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

// initProducer builds the bookings.created producer. Events are optional:
// without brokers configured the service runs with events disabled.
func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafkaconfig.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return nil
	}
	if err := kafkaCfg.Validate(); err != nil {
		cfg.Log.Warn("Kafka disabled", "reason", err)
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, service.EventTypeBookingCreated, service.EventTypeBookingCreated+".dlq")
	if err != nil {
		cfg.Log.Warn("Kafka disabled", "error", err)
		return nil
	}
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	stayReader := repository.NewMongoStayReader(cfg)

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		stayReader,
		bookingValidator,
		pricing.DefaultRateTable(),
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName, "events", producer != nil)
	return bookingService
}
