package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	pg "pawtrack/internal/adapters/storage/postgres"

	"pawtrack/internal/adapters/auth/jwtauth"
	"pawtrack/internal/platform/logger"
	"pawtrack/internal/router"
)

// Orígenes del frontend en dev.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
}

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// default solo para dev; en prod viene por env
		secret = "dev-secret-change-me"
		log.Warn("JWT_SECRET not set, using dev default", nil)
	}

	// JWT: el mismo service firma (login) y verifica (middleware).
	jwtSvc := jwtauth.New(jwtauth.Config{
		SigningKey: secret,
		TTL:        parseTTL(os.Getenv("JWT_TTL")),
	})

	var db *sql.DB
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		opened, err := pg.Open(dsn)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		if err := pg.RunMigrations(opened); err != nil {
			log.Error("migrations failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		db = opened
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:   jwtSvc,
		TokenIssuer:    jwtSvc,
		DB:             db,
		Logger:         log,
		AllowedOrigins: defaultOrigins,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func parseTTL(s string) time.Duration {
	if s == "" {
		return 0 // default del adapter
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
