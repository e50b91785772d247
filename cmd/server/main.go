package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skylog/flightdeck/internal/db"
	"skylog/flightdeck/internal/logging"
	"skylog/flightdeck/internal/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flightdeck starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	if _, err := db.InitORM(db.PostgresDSN()); err != nil {
		logging.Error("Failed to open ORM database", "error", err.Error())
		log.Fatalf("Failed to open ORM database: %v", err)
	}
	logging.Info("ORM database ready")

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince)

	// Metrics live outside the chi router so middleware never touches them.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting", "port", port, "environment", appEnv)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
