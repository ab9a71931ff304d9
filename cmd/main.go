package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/hotelops/roomadmin/internal/api/http"
	"github.com/hotelops/roomadmin/internal/config"
	"github.com/hotelops/roomadmin/internal/pdf"
	"github.com/hotelops/roomadmin/internal/repository"
	"github.com/hotelops/roomadmin/internal/repository/model"
	"github.com/hotelops/roomadmin/internal/seed"
	"github.com/hotelops/roomadmin/internal/service"
	"github.com/hotelops/roomadmin/internal/storage"
	"github.com/hotelops/roomadmin/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		log.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	assets, err := storage.NewLocalAssetStore(cfg.Storage.Root, log)
	if err != nil {
		log.Error("failed to init asset store", slog.Any("error", err))
		os.Exit(1)
	}

	roomRepo := repository.NewPostgresRoomRepository(db)
	renderer := pdf.NewBrochureRenderer(cfg.PDF.RenderTimeout, log)

	roomService := service.NewRoomService(
		roomRepo, assets, renderer, log,
		cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize,
	)

	if cfg.SeedPath != "" {
		if err := seed.Load(context.Background(), cfg.SeedPath, roomRepo, log); err != nil {
			log.Error("failed to apply seed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	roomController := http.NewRoomController(roomService, log, cfg.HTTP.BaseURL, cfg.Storage.MaxUploadSize)

	router := http.SetupRouter(roomController, http.RouterConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		StorageRoot:  cfg.Storage.Root,
	})

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Room{}, &model.RoomFacility{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
