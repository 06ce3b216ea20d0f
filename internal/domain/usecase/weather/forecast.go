package weather

import (
	"fmt"
	"math"
	"sort"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/util/numberutils"
)

// GetForecast resolves the city, fetches days*8 three-hour samples and
// reduces them into per-day summaries. Each call re-fetches from the
// provider; only the current-weather read path is cached.
func (uc *weatherUseCase) GetForecast(city string, days int) (*entity.ForecastSummary, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", model.ErrInvalidParams)
	}
	days = numberutils.ClampInt(days, minForecastDays, maxForecastDays)

	coords, err := uc.apiGateway.GeocodeCity(city)
	if err != nil {
		return nil, err
	}

	samples, err := uc.apiGateway.GetForecastSamples(coords.Lat, coords.Lon, days*samplesPerDay)
	if err != nil {
		return nil, err
	}

	summary := &entity.ForecastSummary{
		Location: coords.Label,
		Daily:    reduceDailyForecasts(samples, days),
	}

	log.Infof("Built %d-day forecast summary for %s", len(summary.Daily), summary.Location)
	return summary, nil
}

// reduceDailyForecasts buckets samples by calendar day and reduces each
// bucket, in ascending date order, stopping once days summaries exist even if
// more buckets remain.
func reduceDailyForecasts(samples []entity.ForecastSample, days int) []entity.DailyForecast {
	buckets := make(map[string][]entity.ForecastSample)
	dates := make([]string, 0, days)
	for _, sample := range samples {
		if _, seen := buckets[sample.Date]; !seen {
			dates = append(dates, sample.Date)
		}
		buckets[sample.Date] = append(buckets[sample.Date], sample)
	}
	// ISO dates sort chronologically
	sort.Strings(dates)

	daily := make([]entity.DailyForecast, 0, days)
	for _, date := range dates {
		if len(daily) == days {
			break
		}
		daily = append(daily, reduceBucket(date, buckets[date]))
	}
	return daily
}

// reduceBucket computes one DailyForecast from a non-empty day bucket:
// min/max temperature, dominant condition (ties broken by first encounter in
// provider order), mean wind speed, and the maximum precipitation probability
// as an integer percentage.
func reduceBucket(date string, bucket []entity.ForecastSample) entity.DailyForecast {
	minTemp := bucket[0].Temperature
	maxTemp := bucket[0].Temperature
	windSum := 0.0
	maxPop := 0.0
	conditionCounts := make(map[string]int)
	conditionOrder := make([]string, 0, len(bucket))

	for _, sample := range bucket {
		if sample.Temperature < minTemp {
			minTemp = sample.Temperature
		}
		if sample.Temperature > maxTemp {
			maxTemp = sample.Temperature
		}
		windSum += sample.WindSpeed
		if sample.Pop > maxPop {
			maxPop = sample.Pop
		}
		if _, seen := conditionCounts[sample.Condition]; !seen {
			conditionOrder = append(conditionOrder, sample.Condition)
		}
		conditionCounts[sample.Condition]++
	}

	dominant := ""
	best := 0
	for _, condition := range conditionOrder {
		if conditionCounts[condition] > best {
			best = conditionCounts[condition]
			dominant = condition
		}
	}

	precipitation := 0
	if maxPop > 0 {
		precipitation = int(math.Round(maxPop * 100))
	}

	return entity.DailyForecast{
		Date:                     date,
		TempMin:                  roundToOneDecimal(minTemp),
		TempMax:                  roundToOneDecimal(maxTemp),
		Condition:                dominant,
		PrecipitationProbability: precipitation,
		WindSpeed:                roundToOneDecimal(windSum / float64(len(bucket))),
	}
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
