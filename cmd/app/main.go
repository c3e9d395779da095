package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"shipping/cmd"
	adapterhttp "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/carrierrepo"
	"shipping/internal/adapters/out/postgres/historyrepo"
	"shipping/internal/adapters/out/postgres/routerepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetPendingShipmentsQueryHandler(),
		configs.PendingAlertAfter,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		AssignExclusiveCarriers: boolEnvVariable("ASSIGN_EXCLUSIVE_CARRIERS", false),
		PendingAlertAfter:       durationEnvVariable("PENDING_ALERT_AFTER", 24*time.Hour),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func boolEnvVariable(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %v", key, err)
	}
	return value
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&routerepo.RouteDTO{},
		&carrierrepo.CarrierDTO{},
		&historyrepo.HistoryEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAssignShipmentCommandHandler(),
		app.CreateCreateRouteCommandHandler(),
		app.CreateCreateCarrierCommandHandler(),
		app.CreateGetUserShipmentsQueryHandler(),
		app.CreateGetAllShipmentsQueryHandler(),
		app.CreateGetPendingShipmentsQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetShipmentHistoryQueryHandler(),
		app.CreateGetAllRoutesQueryHandler(),
		app.CreateGetAllCarriersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
