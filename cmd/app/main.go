package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"digisales/cmd"
	httpin "digisales/internal/adapters/in/http"
	"digisales/internal/adapters/out/posgateway"
	"digisales/internal/adapters/out/postgres/heldorderrepo"
	"digisales/internal/monitor"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	gateway, err := posgateway.NewClient(configs.PosGatewayURL)
	if err != nil {
		log.Fatalf("Error creating gateway client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, gateway, logger)

	posMonitor := app.CreateMonitor()
	jobManager := monitor.NewJobManager(
		posMonitor,
		configs.SessionPollIntervalSeconds,
		configs.OrderPollIntervalSeconds,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting polling jobs: %v", err)
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
		PosGatewayURL:              goDotEnvVariable("POS_GATEWAY_URL"),
		SessionPollIntervalSeconds: intEnvVariable("SESSION_POLL_INTERVAL_SECONDS", 60),
		OrderPollIntervalSeconds:   intEnvVariable("ORDER_POLL_INTERVAL_SECONDS", 30),
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

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the held-order repository relies on for name conflicts
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&heldorderrepo.HeldOrderDTO{},
		&heldorderrepo.HeldOrderLineDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateHoldOrderCommandHandler(),
		app.CreateRestoreHeldOrderCommandHandler(),
		app.CreateDeleteHeldOrderCommandHandler(),
		app.CreateListHeldOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
