package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"orderflow/cmd"
	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres/documentrepo"
	"orderflow/internal/adapters/out/postgres/logisticsrepo"
	"orderflow/internal/adapters/out/postgres/requisitionrepo"
	"orderflow/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	rd "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	redisClient := rd.NewClient(&rd.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:                  goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:              goDotEnvVariable("REDIS_PASSWORD"),
		AggregatorBaseURL:          goDotEnvVariable("AGGREGATOR_BASE_URL"),
		AggregatorAPIKey:           goDotEnvVariable("AGGREGATOR_API_KEY"),
		ShippingIntegrationEnabled: goDotEnvBool("SHIPPING_INTEGRATION_ENABLED"),
		OrderCacheTTL:              goDotEnvDuration("ORDER_CACHE_TTL"),
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

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as bool: %v", key, err)
	}
	return value
}

func goDotEnvDuration(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as duration: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&requisitionrepo.RequisitionDTO{},
		&requisitionrepo.LineItemDTO{},
		&shipmentrepo.ShipmentDTO{},
		&documentrepo.DocumentDTO{},
		&documentrepo.PrNumberDTO{},
		&logisticsrepo.CourierRoutingDTO{},
		&logisticsrepo.WarehouseDTO{},
		&logisticsrepo.PackageTemplateDTO{},
		&logisticsrepo.ShippingSettingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateManualShipmentCommandHandler(),
		app.CreateCreateAPIShipmentCommandHandler(),
		app.CreateAdvanceShipmentStatusCommandHandler(),
		app.CreateListLogicalOrdersQueryHandler(),
		app.CreateGetShippingContextQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
