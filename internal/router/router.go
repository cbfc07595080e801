package router

import (
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"strings"

	mem "pawtrack/internal/adapters/storage/memory"
	pg "pawtrack/internal/adapters/storage/postgres"

	"pawtrack/internal/adapters/auth/jwtauth"
	"pawtrack/internal/adapters/hash/bcrypthash"
	"pawtrack/internal/domain/accounts"
	"pawtrack/internal/domain/chat"
	"pawtrack/internal/domain/listings"
	"pawtrack/internal/middleware"
	"pawtrack/internal/platform/logger"
	"pawtrack/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// AuthVerifier puede ser nil (modo dev: X-Debug-User-ID).
	AuthVerifier auth.AuthVerifier

	// TokenIssuer firma los tokens del login. Si es nil se construye uno
	// HS256 desde JWT_SECRET (con default de dev).
	TokenIssuer auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger para request logging.
	Logger logger.Logger

	// Orígenes permitidos para CORS. Vacío = sin CORS.
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(opts.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		listingsRepo listings.Repository
		accountsRepo accounts.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		listingsRepo = pg.NewListingsRepo(db)
		accountsRepo = pg.NewAccountsRepo(db)
	} else {
		listingsRepo = mem.NewListingsRepo()
		accountsRepo = mem.NewAccountsRepo()
	}

	issuer := opts.TokenIssuer
	if issuer == nil {
		issuer = jwtauth.New(jwtauth.Config{SigningKey: jwtSecretFromEnv()})
	}

	// Services por módulo
	listingsSvc := listings.NewService(listingsRepo)
	accountsSvc := accounts.NewService(accountsRepo, bcrypthash.New(bcryptCostFromEnv()), issuer)
	chatSvc := chat.NewService(listingsSvc)

	// Rutas por módulo
	listings.RegisterRoutes(r, listingsSvc)
	accounts.RegisterRoutes(r, accountsSvc)
	chat.RegisterRoutes(r, chatSvc)

	return r
}

func jwtSecretFromEnv() string {
	if s := strings.TrimSpace(os.Getenv("JWT_SECRET")); s != "" {
		return s
	}
	// default solo para dev; en prod viene por env
	return "dev-secret-change-me"
}

func bcryptCostFromEnv() int {
	if v := strings.TrimSpace(os.Getenv("BCRYPT_COST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0 // default de bcrypt
}
