package main

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	_ "weather-api/configs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	pkghttp "weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// The provider API key is fatal when absent, before any call attempt.
	apiKey := resource.GetString("app.provider.api-key")

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateway
	weatherGateway, err := api.NewOpenWeatherGateway(
		resource.GetString("app.provider.base-url"),
		apiKey,
		pkghttp.ClientOptions{
			ReadTimeout:       time.Duration(resource.GetInt("app.provider.read-timeout-seconds")) * time.Second,
			ConnectionTimeout: time.Duration(resource.GetInt("app.provider.connection-timeout-seconds")) * time.Second,
		},
	)
	if err != nil {
		log.Fatalf("Failed to initialize weather gateway: %v", err)
	}

	// Init UseCase
	cacheTTL := time.Duration(resource.GetInt("app.cache.current-weather-ttl-minutes")) * time.Minute
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, clockwork.NewRealClock(), cacheTTL)
	healthUseCase := health.NewHealthUseCase(apiKey != "", weatherUseCase)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
