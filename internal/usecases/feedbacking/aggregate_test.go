package feedbacking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

func TestRatingDistribution(t *testing.T) {
	t.Run("Deve contar e calcular o percentual de cada nota", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 1},
		}

		distribution := RatingDistribution(records)

		assert.Len(t, distribution, 5)
		assert.Equal(t, domain.RatingBucket{Rating: 1, Count: 1, Percentage: 25}, distribution[0])
		assert.Equal(t, domain.RatingBucket{Rating: 2, Count: 0, Percentage: 0}, distribution[1])
		assert.Equal(t, domain.RatingBucket{Rating: 3, Count: 0, Percentage: 0}, distribution[2])
		assert.Equal(t, domain.RatingBucket{Rating: 4, Count: 1, Percentage: 25}, distribution[3])
		assert.Equal(t, domain.RatingBucket{Rating: 5, Count: 2, Percentage: 50}, distribution[4])
	})

	t.Run("Conjunto vazio deve retornar as cinco faixas zeradas, nunca NaN", func(t *testing.T) {
		distribution := RatingDistribution(nil)

		assert.Len(t, distribution, 5)
		for i, bucket := range distribution {
			assert.Equal(t, i+1, bucket.Rating)
			assert.Zero(t, bucket.Count)
			assert.Zero(t, bucket.Percentage)
			assert.False(t, bucket.Percentage != bucket.Percentage, "percentual não pode ser NaN")
		}
	})
}

func TestAverageRating(t *testing.T) {
	t.Run("Deve calcular a média das notas", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			{Rating: 5}, {Rating: 4}, {Rating: 3},
		}

		assert.Equal(t, 4.0, AverageRating(records))
	})

	t.Run("Conjunto vazio deve retornar zero", func(t *testing.T) {
		assert.Zero(t, AverageRating(nil))
	})
}

func TestSubmetricAverages(t *testing.T) {
	t.Run("Deve considerar apenas os registros em que a sub-métrica existe", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			{Rating: 5, AIQuality: floatPtr(4), ChartQuality: intPtr(5)},
			{Rating: 4, AIQuality: floatPtr(5)},
			{Rating: 3},
		}

		averages := SubmetricAverages(records)

		// AIQuality: (4+5)/2, presente em 2 de 3 registros
		assert.NotNil(t, averages.AIQuality)
		assert.InDelta(t, 4.5, *averages.AIQuality, 1e-9)

		// ChartQuality: presente em um único registro
		assert.NotNil(t, averages.ChartQuality)
		assert.InDelta(t, 5.0, *averages.ChartQuality, 1e-9)

		// Sem nenhuma ocorrência: média nula, nunca zero
		assert.Nil(t, averages.ForecastRating)
		assert.Nil(t, averages.InsightsHelpfulness)
	})

	t.Run("Conjunto vazio deve retornar todas as médias nulas", func(t *testing.T) {
		averages := SubmetricAverages(nil)

		assert.Nil(t, averages.AIQuality)
		assert.Nil(t, averages.ChartQuality)
		assert.Nil(t, averages.ForecastRating)
		assert.Nil(t, averages.InsightsHelpfulness)
	})
}

func TestTrendFromCounts(t *testing.T) {
	tests := []struct {
		name     string
		recent   int
		previous int
		expected float64
	}{
		{
			name:     "Atividade nova onde não havia nenhuma deve retornar +100%",
			recent:   5,
			previous: 0,
			expected: 100,
		},
		{
			name:     "Ambos os períodos vazios devem retornar 0%",
			recent:   0,
			previous: 0,
			expected: 0,
		},
		{
			name:     "Queda pela metade deve retornar -50%",
			recent:   3,
			previous: 6,
			expected: -50,
		},
		{
			name:     "Dobro de atividade deve retornar +100%",
			recent:   8,
			previous: 4,
			expected: 100,
		},
		{
			name:     "Contagens iguais devem retornar 0%",
			recent:   4,
			previous: 4,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TrendFromCounts(tt.recent, tt.previous), 1e-9)
		})
	}
}

func TestTrend(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	const windowDays = 7

	record := func(daysAgo int) *domain.FeedbackRecord {
		return &domain.FeedbackRecord{
			Rating: 4,
			Date:   now.AddDate(0, 0, -daysAgo),
		}
	}

	t.Run("Deve comparar a janela recente com a imediatamente anterior", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			// Janela recente (últimos 7 dias): 3 registros
			record(1), record(3), record(6),
			// Janela anterior (7 a 14 dias atrás): 2 registros
			record(8), record(12),
			// Fora das duas janelas: ignorado
			record(20),
		}

		// (3-2)/2 * 100 = 50%
		assert.InDelta(t, 50.0, Trend(records, now, windowDays), 1e-9)
	})

	t.Run("Registros futuros ao instante de referência ficam fora da conta", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			record(1),
			record(-2), // "futuro" relativo ao instante de referência
		}

		assert.InDelta(t, 100.0, Trend(records, now, windowDays), 1e-9)
	})

	t.Run("Mesmo conjunto e mesmo instante devem produzir o mesmo resultado", func(t *testing.T) {
		records := []*domain.FeedbackRecord{record(2), record(9)}

		first := Trend(records, now, windowDays)
		second := Trend(records, now, windowDays)

		assert.Equal(t, first, second)
	})
}

func TestSentimentDistribution(t *testing.T) {
	positive := domain.SentimentPositive
	neutral := domain.SentimentNeutral
	negative := domain.SentimentNegative

	t.Run("Deve contabilizar rótulos e calcular proporções apenas sobre os rotulados", func(t *testing.T) {
		records := []*domain.FeedbackRecord{
			{Rating: 5, Sentiment: &positive},
			{Rating: 5, Sentiment: &positive},
			{Rating: 3, Sentiment: &neutral},
			{Rating: 1, Sentiment: &negative},
			{Rating: 4}, // sem rótulo
		}

		dist := SentimentDistribution(records)

		assert.Equal(t, 2, dist.Positive)
		assert.Equal(t, 1, dist.Neutral)
		assert.Equal(t, 1, dist.Negative)
		assert.Equal(t, 1, dist.Unlabeled)

		// Proporções sobre os 4 rotulados, não sobre os 5 registros
		assert.InDelta(t, 50.0, dist.PositivePercentage, 1e-9)
		assert.InDelta(t, 25.0, dist.NeutralPercentage, 1e-9)
		assert.InDelta(t, 25.0, dist.NegativePercentage, 1e-9)
	})

	t.Run("Nenhum rótulo deve deixar as proporções zeradas, nunca NaN", func(t *testing.T) {
		records := []*domain.FeedbackRecord{{Rating: 4}, {Rating: 5}}

		dist := SentimentDistribution(records)

		assert.Equal(t, 2, dist.Unlabeled)
		assert.Zero(t, dist.PositivePercentage)
		assert.Zero(t, dist.NeutralPercentage)
		assert.Zero(t, dist.NegativePercentage)
	})
}

func TestAnalyzePatterns(t *testing.T) {
	const minRequired = 10

	buildRecords := func(count int) []*domain.FeedbackRecord {
		positive := domain.SentimentPositive
		records := make([]*domain.FeedbackRecord, 0, count)
		for i := 0; i < count; i++ {
			records = append(records, &domain.FeedbackRecord{
				Rating:    4,
				AIQuality: floatPtr(4),
				Sentiment: &positive,
			})
		}
		return records
	}

	t.Run("Abaixo do mínimo deve retornar apenas o estado de coleta", func(t *testing.T) {
		analysis := AnalyzePatterns(buildRecords(9), minRequired)

		assert.Equal(t, domain.PatternAnalysisCollecting, analysis.Status)
		assert.Equal(t, 9, analysis.FeedbackCount)
		assert.Equal(t, minRequired, analysis.RequiredFeedback)

		// Nunca estatísticas parciais
		assert.Nil(t, analysis.SubmetricAverages)
		assert.Nil(t, analysis.Sentiment)
	})

	t.Run("Exatamente no mínimo deve liberar a análise completa", func(t *testing.T) {
		analysis := AnalyzePatterns(buildRecords(10), minRequired)

		assert.Equal(t, domain.PatternAnalysisReady, analysis.Status)
		assert.Equal(t, 10, analysis.FeedbackCount)
		assert.NotNil(t, analysis.SubmetricAverages)
		assert.NotNil(t, analysis.Sentiment)
		assert.Equal(t, 10, analysis.Sentiment.Positive)
	})

	t.Run("Conjunto vazio deve retornar coleta com contagem zero", func(t *testing.T) {
		analysis := AnalyzePatterns(nil, minRequired)

		assert.Equal(t, domain.PatternAnalysisCollecting, analysis.Status)
		assert.Zero(t, analysis.FeedbackCount)
	})
}
