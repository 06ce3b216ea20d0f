package entity

// RiskLevel is a coarse ordinal classification of weather-driven event risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var riskRank = map[RiskLevel]int{
	RiskLow:    0,
	RiskMedium: 1,
	RiskHigh:   2,
}

// Escalate returns the higher of l and target. Within a single classification
// pass a level only ever moves low → medium → high, never back down.
func (l RiskLevel) Escalate(target RiskLevel) RiskLevel {
	if riskRank[target] > riskRank[l] {
		return target
	}
	return l
}

// WeatherRisk is the result of one event risk assessment. Never mutated after
// construction.
type WeatherRisk struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
}
