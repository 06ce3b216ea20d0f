package health

import (
	"strconv"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
)

type healthUseCase struct {
	providerConfigured bool
	weatherUseCase     weather.UseCase
}

func NewHealthUseCase(providerConfigured bool, weatherUseCase weather.UseCase) UseCase {
	return &healthUseCase{
		providerConfigured: providerConfigured,
		weatherUseCase:     weatherUseCase,
	}
}

// CheckHealth reports the provider component status. There is no live
// upstream probe; only the configuration is inspected.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	providerStatus := model.StatusUp
	details := map[string]string{
		"api_key":          "configured",
		"cached_locations": strconv.Itoa(useCase.weatherUseCase.CachedLocationCount()),
	}
	if !useCase.providerConfigured {
		providerStatus = model.StatusDown
		details["api_key"] = "missing"
	}

	return model.HealthResponse{
		Status: providerStatus,
		Provider: model.ComponentHealthStatus{
			Status:  providerStatus,
			Details: details,
		},
	}
}
