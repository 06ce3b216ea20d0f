package health

import "weather-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
