package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sirpyerre/customer-portal/internal/api/handler"
	"github.com/sirpyerre/customer-portal/internal/api/middleware"
	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/core/service"
	mongoaudit "github.com/sirpyerre/customer-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/sirpyerre/customer-portal/internal/infrastructure/db/redis"
	"github.com/sirpyerre/customer-portal/internal/infrastructure/identity"
	"github.com/sirpyerre/customer-portal/internal/infrastructure/session"
	"github.com/sirpyerre/customer-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	paths := middleware.Paths{Login: cfg.Paths.Login, Landing: cfg.Paths.Landing}

	// --- Dependencies ---
	codec := session.NewCodec(cfg.Session.Secret)
	sessions := session.NewManager(codec, session.ManagerOptions{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.IsProduction(),
		Revoker:    redisdb.NewRevocationList(rdb),
	}, log)

	provider := identity.NewClient(identity.Config{
		BaseURL: cfg.Identity.BaseURL,
		Timeout: cfg.Identity.Timeout,
	})
	audit := mongoaudit.NewAuditRepository(db)
	authService := service.NewAuthService(provider, audit, cfg.Session.TTL, log)

	guard := middleware.NewGuard(sessions, paths)
	authHandler := handler.NewAuthHandler(authService, sessions, paths)
	pagesHandler := handler.NewPagesHandler(guard)

	// --- Route classification table ---
	// The gatekeeper trusts this table; keep it in sync with the routes
	// below. Longest prefix wins, so /admin stays restricted even though /
	// is public.
	table := domain.NewRouteTable(
		domain.RouteRule{Prefix: "/", Class: domain.RoutePublic},
		domain.RouteRule{Prefix: cfg.Paths.Login, Class: domain.RoutePublic},
		domain.RouteRule{Prefix: "/logout", Class: domain.RoutePublic},
		domain.RouteRule{Prefix: "/dashboard", Class: domain.RouteProtected},
		domain.RouteRule{Prefix: "/account", Class: domain.RouteProtected},
		domain.RouteRule{Prefix: "/admin", Class: domain.RouteRestricted, Roles: []string{domain.RoleAdmin}},
	)
	e.Use(middleware.Gatekeeper(table, sessions, paths, log))

	// --- Routes ---
	e.GET("/", pagesHandler.Home)
	e.GET(cfg.Paths.Login, authHandler.LoginPage)
	e.POST(cfg.Paths.Login, authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	e.GET("/dashboard", pagesHandler.Dashboard)
	e.GET("/account", pagesHandler.Account)
	e.GET("/admin", pagesHandler.Admin)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
