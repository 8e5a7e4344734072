package main

import (
	"sudagala/internal/stays/handler"
	"sudagala/internal/stays/repository"
	"sudagala/internal/stays/service"
	"sudagala/internal/stays/validator"
	"sudagala/pkg/app"
	"sudagala/pkg/config"
)

const ServiceName = "stays"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()
	cfg.SetMongo()

	cfg.Log.Info("Starting Stays service")
	stayService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewStayHandler(stayService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.StayService {
	stayValidator := validator.NewStayValidator(cfg.Log)
	stayRepo := repository.NewMongoStayRepository(cfg)
	stayService := service.NewStayService(stayRepo, stayValidator, cfg)

	cfg.Log.Info("Stay service initialized", "database", cfg.MongoDatabaseName)
	return stayService
}
