package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

func TestEvaluateReadiness(t *testing.T) {
	const (
		minFeedback  = 10
		minForecasts = 10
	)

	tests := []struct {
		name               string
		totalFeedback      int
		completedForecasts int
		expected           domain.ReadinessState
	}{
		{
			name:               "Sem dados deve classificar como coletando",
			totalFeedback:      0,
			completedForecasts: 0,
			expected:           domain.ReadinessCollectingData,
		},
		{
			name:               "Abaixo dos dois limiares deve classificar como coletando",
			totalFeedback:      9,
			completedForecasts: 9,
			expected:           domain.ReadinessCollectingData,
		},
		{
			name:               "Apenas previsões no limiar deve classificar como parcialmente ativo",
			totalFeedback:      9,
			completedForecasts: 12,
			expected:           domain.ReadinessPartiallyActive,
		},
		{
			name:               "Apenas feedback no limiar deve classificar como parcialmente ativo",
			totalFeedback:      15,
			completedForecasts: 3,
			expected:           domain.ReadinessPartiallyActive,
		},
		{
			name:               "Exatamente nos dois limiares deve classificar como totalmente ativo",
			totalFeedback:      10,
			completedForecasts: 10,
			expected:           domain.ReadinessFullyActive,
		},
		{
			name:               "Bem acima dos limiares deve classificar como totalmente ativo",
			totalFeedback:      100,
			completedForecasts: 50,
			expected:           domain.ReadinessFullyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateReadiness(tt.totalFeedback, tt.completedForecasts, minFeedback, minForecasts)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluateReadiness_CanRegress(t *testing.T) {
	// O estado é recalculado do zero a cada avaliação: se registros forem
	// removidos, a classificação volta para trás sem nenhuma memória
	assert.Equal(t, domain.ReadinessFullyActive, EvaluateReadiness(10, 10, 10, 10))
	assert.Equal(t, domain.ReadinessPartiallyActive, EvaluateReadiness(9, 10, 10, 10))
	assert.Equal(t, domain.ReadinessCollectingData, EvaluateReadiness(9, 9, 10, 10))
}
