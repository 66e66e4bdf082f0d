package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

func TestBuildAccuracySummary(t *testing.T) {
	completed := func(forecastType domain.ForecastType, accuracy, mape *float64) *domain.ForecastRecord {
		return &domain.ForecastRecord{
			Type:     forecastType,
			Status:   domain.ForecastStatusCompleted,
			Accuracy: accuracy,
			MAPE:     mape,
		}
	}

	t.Run("Deve agrupar por tipo e calcular as médias de cada grupo", func(t *testing.T) {
		records := []*domain.ForecastRecord{
			completed(domain.ForecastTypeSales, floatPtr(90), floatPtr(10)),
			completed(domain.ForecastTypeSales, floatPtr(80), floatPtr(20)),
			completed(domain.ForecastTypeStock, floatPtr(70), floatPtr(30)),
			{Type: domain.ForecastTypeCashFlow, Status: domain.ForecastStatusPending},
		}

		summary := BuildAccuracySummary(records)

		assert.Equal(t, 4, summary.TotalForecasts)
		assert.Equal(t, 3, summary.CompletedForecasts)
		assert.Equal(t, 1, summary.PendingForecasts)

		sales := summary.AccuracyByType[domain.ForecastTypeSales]
		assert.NotNil(t, sales)
		assert.Equal(t, 2, sales.Count)
		assert.InDelta(t, 85.0, *sales.AverageAccuracy, 1e-9)
		assert.InDelta(t, 15.0, *sales.AverageMAPE, 1e-9)

		stock := summary.AccuracyByType[domain.ForecastTypeStock]
		assert.NotNil(t, stock)
		assert.Equal(t, 1, stock.Count)
		assert.InDelta(t, 70.0, *stock.AverageAccuracy, 1e-9)

		// Previsões pendentes não entram em nenhum grupo
		assert.NotContains(t, summary.AccuracyByType, domain.ForecastTypeCashFlow)
	})

	t.Run("Registro com métrica não aplicável conta no grupo mas fica fora das médias", func(t *testing.T) {
		records := []*domain.ForecastRecord{
			completed(domain.ForecastTypeSales, floatPtr(90), floatPtr(10)),
			// Resolvida com valor real zero: sem accuracy nem MAPE
			completed(domain.ForecastTypeSales, nil, nil),
		}

		summary := BuildAccuracySummary(records)

		sales := summary.AccuracyByType[domain.ForecastTypeSales]
		assert.Equal(t, 2, sales.Count)

		// A média considera apenas o registro com métrica aplicável; tratar o
		// nulo como zero derrubaria a média para 45
		assert.InDelta(t, 90.0, *sales.AverageAccuracy, 1e-9)
		assert.InDelta(t, 10.0, *sales.AverageMAPE, 1e-9)
	})

	t.Run("Grupo em que nenhum registro tem métrica aplicável deve ter médias nulas", func(t *testing.T) {
		records := []*domain.ForecastRecord{
			completed(domain.ForecastTypeQuantity, nil, nil),
		}

		summary := BuildAccuracySummary(records)

		quantity := summary.AccuracyByType[domain.ForecastTypeQuantity]
		assert.Equal(t, 1, quantity.Count)
		assert.Nil(t, quantity.AverageAccuracy)
		assert.Nil(t, quantity.AverageMAPE)
	})

	t.Run("Conjunto vazio deve retornar resumo zerado", func(t *testing.T) {
		summary := BuildAccuracySummary(nil)

		assert.Zero(t, summary.TotalForecasts)
		assert.Zero(t, summary.CompletedForecasts)
		assert.Zero(t, summary.PendingForecasts)
		assert.Empty(t, summary.AccuracyByType)
	})

	t.Run("A ordem dos registros não deve alterar o resultado", func(t *testing.T) {
		forward := []*domain.ForecastRecord{
			completed(domain.ForecastTypeSales, floatPtr(90), floatPtr(10)),
			completed(domain.ForecastTypeSales, floatPtr(70), floatPtr(30)),
			{Type: domain.ForecastTypeStock, Status: domain.ForecastStatusPending},
		}
		backward := []*domain.ForecastRecord{forward[2], forward[1], forward[0]}

		assert.Equal(t, BuildAccuracySummary(forward), BuildAccuracySummary(backward))
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
