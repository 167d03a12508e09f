package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"couriermanagement/cmd"
	httpserver "couriermanagement/internal/adapters/in/http"
	"couriermanagement/internal/adapters/out/postgres/courierrepo"
	"couriermanagement/internal/adapters/out/postgres/deliveryrepo"
	"couriermanagement/internal/adapters/out/postgres/productrepo"
	"couriermanagement/internal/adapters/out/postgres/routerepo"
	"couriermanagement/internal/adapters/out/postgres/vehiclerepo"
	"couriermanagement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := setupDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	startJobs(&app, configs)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		EditCutoffHours:     goDotEnvIntVariable("EDIT_CUTOFF_HOURS"),
		DispatchJobSchedule: goDotEnvVariable("DISPATCH_JOB_SCHEDULE"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer", key)
	}
	return value
}

func setupDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
		&vehiclerepo.VehicleDTO{},
		&productrepo.ProductDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateStartDueDeliveriesCommandHandler(),
		configs.DispatchJobSchedule,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateGenerateDeliveriesCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryCommandHandler(),
		app.CreateDeleteDeliveryCommandHandler(),
		app.CreateSearchDeliveriesQueryHandler(),
		app.CreateGetDeliveryByIDQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
