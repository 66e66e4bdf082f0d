package learning

import (
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

// BuildAccuracySummary agrupa as previsões resolvidas por tipo e calcula as
// médias de acurácia e MAPE de cada grupo. Registros com métrica não aplicável
// (valor real zero) contam no tamanho do grupo mas ficam fora das médias —
// tratá-los como zero enviesaria os agregados para baixo silenciosamente.
//
// Função pura e independente da ordem dos registros.
func BuildAccuracySummary(records []*domain.ForecastRecord) *domain.AccuracySummary {
	summary := &domain.AccuracySummary{
		AccuracyByType: make(map[domain.ForecastType]*domain.TypeAccuracy),
	}

	type typeTotals struct {
		accuracySum   float64
		accuracyCount int
		mapeSum       float64
		mapeCount     int
		count         int
	}
	totals := make(map[domain.ForecastType]*typeTotals)

	for _, record := range records {
		summary.TotalForecasts++

		if !record.IsCompleted() {
			summary.PendingForecasts++
			continue
		}

		summary.CompletedForecasts++

		group, ok := totals[record.Type]
		if !ok {
			group = &typeTotals{}
			totals[record.Type] = group
		}

		group.count++

		if record.Accuracy != nil {
			group.accuracySum += *record.Accuracy
			group.accuracyCount++
		}
		if record.MAPE != nil {
			group.mapeSum += *record.MAPE
			group.mapeCount++
		}
	}

	for forecastType, group := range totals {
		summary.AccuracyByType[forecastType] = &domain.TypeAccuracy{
			AverageAccuracy: averageOrNil(group.accuracySum, group.accuracyCount),
			AverageMAPE:     averageOrNil(group.mapeSum, group.mapeCount),
			Count:           group.count,
		}
	}

	return summary
}

func averageOrNil(sum float64, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}
