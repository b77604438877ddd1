package main

import (
	"farmmarket/cmd"
	"farmmarket/internal/adapters/in/http"
	"farmmarket/internal/adapters/out/postgres/deliveryrepo"
	"farmmarket/internal/adapters/out/postgres/dispatcherrepo"
	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/adapters/out/postgres/productrepo"
	"farmmarket/internal/adapters/out/postgres/ratingrepo"
	"farmmarket/internal/jobs"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		AssignmentSchedule: goDotEnvVariable("ASSIGNMENT_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&dispatcherrepo.DispatcherDTO{},
		&productrepo.ProductDTO{},
		&ratingrepo.RatingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.OrderUoWFactory(),
		app.CreateAssignDispatcherCommandHandler(),
		configs.AssignmentSchedule,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateRegisterDispatcherCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateGetDispatcherWorkloadsQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAvailableProductsQueryHandler(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
