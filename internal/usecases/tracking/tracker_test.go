package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

func TestDaysUntilTarget(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		target   time.Time
		expected int
	}{
		{
			name:     "Data alvo três dias à frente deve retornar 3",
			target:   now.AddDate(0, 0, 3),
			expected: 3,
		},
		{
			name:     "Data alvo no mesmo instante deve retornar 0",
			target:   now,
			expected: 0,
		},
		{
			name:     "Diferença parcial de dia deve arredondar para baixo",
			target:   now.Add(36 * time.Hour),
			expected: 1,
		},
		{
			name:     "Data alvo no passado deve retornar valor negativo",
			target:   now.AddDate(0, 0, -2),
			expected: -2,
		},
		{
			name:     "Atraso parcial também arredonda para baixo (mais negativo)",
			target:   now.Add(-12 * time.Hour),
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysUntilTarget(tt.target, now))
		})
	}
}

func TestClassifyUrgency(t *testing.T) {
	const threshold = 7

	tests := []struct {
		name     string
		days     int
		expected domain.Urgency
	}{
		{
			name:     "Dias negativos devem classificar como atrasada",
			days:     -1,
			expected: domain.UrgencyOverdue,
		},
		{
			name:     "Zero dias deve classificar como urgente",
			days:     0,
			expected: domain.UrgencyUrgent,
		},
		{
			name:     "Exatamente no limiar deve classificar como urgente",
			days:     7,
			expected: domain.UrgencyUrgent,
		},
		{
			name:     "Um dia acima do limiar deve classificar como futura",
			days:     8,
			expected: domain.UrgencyUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyUrgency(tt.days, threshold))
		})
	}
}
