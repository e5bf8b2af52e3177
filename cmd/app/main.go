package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"atelier/cmd"
	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres/logisticsrepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/tailorrepo"
	"atelier/internal/adapters/out/postgres/timelinerepo"
	"atelier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAssignTailorsCommandHandler(),
		app.UnitOfWorkFactory(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustConnectDB opens the database through the pq driver and hands the
// connection to GORM.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&tailorrepo.TailorDTO{},
		&logisticsrepo.QcStationDTO{},
		&logisticsrepo.VanDTO{},
		&logisticsrepo.FlightDTO{},
		&timelinerepo.TransitionRecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAssignTailorsCommandHandler(),
		app.CreateCreateTailorCommandHandler(),
		app.CreateGetValidNextStatesQueryHandler(),
		app.CreateGetOrderTimelineQueryHandler(),
		app.CreateGetTailorsQueryHandler(),
		app.CreateGetTailorRecommendationsQueryHandler(),
		app.CreateGetQcStationsQueryHandler(),
		app.CreateGetVansQueryHandler(),
		app.CreateGetFlightsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
