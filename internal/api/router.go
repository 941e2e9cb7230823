package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/otokita/catalog-api/internal/api/handler"
	"github.com/otokita/catalog-api/internal/api/middleware"
	"github.com/otokita/catalog-api/internal/core/service"
	"github.com/otokita/catalog-api/internal/infrastructure/config"
	mongodb "github.com/otokita/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/otokita/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Catalog reads require a valid bearer token; catalog writes additionally
// require the admin role. Auth, health, metrics and swagger are open.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	typeRepo := mongodb.NewVehicleTypeRepository(db)
	modelRepo := mongodb.NewVehicleModelRepository(db)
	yearRepo := mongodb.NewVehicleYearRepository(db)
	categoryRepo := mongodb.NewVehicleCategoryRepository(db)
	featureRepo := mongodb.NewVehicleFeatureRepository(db)
	specRepo := mongodb.NewSpecificationRepository(db)
	priceRepo := mongodb.NewPriceRepository(db)

	// --- Services ---
	tokens := service.NewTokenAuthority(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	brandService := service.NewBrandService(brandRepo)
	typeService := service.NewVehicleTypeService(typeRepo, brandRepo)
	modelService := service.NewVehicleModelService(modelRepo, typeRepo, brandRepo)
	yearService := service.NewVehicleYearService(yearRepo)
	categoryService := service.NewVehicleCategoryService(categoryRepo, typeRepo)
	featureService := service.NewVehicleFeatureService(featureRepo, typeRepo)
	specService := service.NewSpecificationService(specRepo, modelRepo)
	priceCache := redisdb.NewPriceCache(rdb, log)
	priceService := service.NewPriceService(priceRepo, yearRepo, modelRepo, categoryRepo, featureRepo, specRepo, priceCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	brandHandler := handler.NewBrandHandler(brandService)
	typeHandler := handler.NewVehicleTypeHandler(typeService)
	modelHandler := handler.NewVehicleModelHandler(modelService)
	yearHandler := handler.NewVehicleYearHandler(yearService)
	categoryHandler := handler.NewVehicleCategoryHandler(categoryService)
	featureHandler := handler.NewVehicleFeatureHandler(featureService)
	specHandler := handler.NewSpecificationHandler(specService)
	priceHandler := handler.NewPriceHandler(priceService)

	// --- Access gate ---
	auth := middleware.Authenticate(tokens, userRepo)
	admin := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes ---
	registerCatalog(e, "/brands", auth, admin, brandHandler)
	registerCatalog(e, "/types", auth, admin, typeHandler)
	registerCatalog(e, "/models", auth, admin, modelHandler)
	registerCatalog(e, "/years", auth, admin, yearHandler)
	registerCatalog(e, "/category", auth, admin, categoryHandler)
	registerCatalog(e, "/feature", auth, admin, featureHandler)
	registerCatalog(e, "/spek", auth, admin, specHandler)
	registerCatalog(e, "/price", auth, admin, priceHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// crudHandler is the route surface every catalog entity exposes.
type crudHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

func registerCatalog(e *echo.Echo, prefix string, auth, admin echo.MiddlewareFunc, h crudHandler) {
	g := e.Group(prefix, auth)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, admin)
	g.PATCH("/:id", h.Update, admin)
	g.DELETE("/:id", h.Delete, admin)
}
