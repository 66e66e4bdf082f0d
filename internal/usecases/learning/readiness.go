package learning

import (
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

// EvaluateReadiness classifica a maturidade do sistema de aprendizado a partir
// das contagens atuais. Classificação pura e sem memória: o estado é sempre
// recalculado do zero, portanto pode regredir se registros forem removidos.
func EvaluateReadiness(totalFeedback, completedForecasts, minFeedback, minForecasts int) domain.ReadinessState {
	feedbackReady := totalFeedback >= minFeedback
	forecastsReady := completedForecasts >= minForecasts

	switch {
	case feedbackReady && forecastsReady:
		return domain.ReadinessFullyActive
	case feedbackReady || forecastsReady:
		return domain.ReadinessPartiallyActive
	default:
		return domain.ReadinessCollectingData
	}
}
