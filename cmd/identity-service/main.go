package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/ssengur01/TalentFlows/internal/api"
	"github.com/ssengur01/TalentFlows/internal/identity"
	"github.com/ssengur01/TalentFlows/internal/middleware"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/pkg/config"
	"github.com/ssengur01/TalentFlows/pkg/database"
	"github.com/ssengur01/TalentFlows/pkg/jwtutil"
	"github.com/ssengur01/TalentFlows/pkg/logger"
	"github.com/ssengur01/TalentFlows/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.Load("identity-service")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting identity-service", appConfig.LogFields()...)

	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(&model.Tenant{}, &model.User{}, &model.RefreshToken{}); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established")

	jwtUtil := jwtutil.NewJWTUtil(&appConfig.JWT)
	httpMetrics := metrics.NewHTTPMetrics(appConfig.ServiceName)

	svc := identity.NewService(db, jwtUtil, appConfig.JWT.RefreshExpiration)
	if _, err := svc.EnsureSystemTenant(context.Background()); err != nil {
		log.Fatal("Failed to seed system tenant", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authAPI := e.Group("/api/auth")
	identity.NewHandler(svc).RegisterRoutes(authAPI)

	log.Info("Starting server", zap.String("port", appConfig.Server.Port))
	if err := e.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
