package feedbacking

import (
	"time"

	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

// Funções puras de agregação de feedback. Todas são determinísticas e
// independentes da ordem dos registros; o instante de referência é sempre um
// parâmetro explícito para que duas chamadas sobre o mesmo conjunto produzam
// estatísticas idênticas.

// RatingDistribution conta os feedbacks por nota inteira de 1 a 5.
// Com o conjunto vazio todas as contagens e percentuais são zero, nunca NaN.
func RatingDistribution(records []*domain.FeedbackRecord) []domain.RatingBucket {
	counts := make(map[int]int, 5)
	for _, record := range records {
		counts[record.Rating]++
	}

	total := len(records)
	distribution := make([]domain.RatingBucket, 0, 5)

	for rating := 1; rating <= 5; rating++ {
		bucket := domain.RatingBucket{
			Rating: rating,
			Count:  counts[rating],
		}
		if total > 0 {
			bucket.Percentage = float64(bucket.Count) / float64(total) * 100
		}
		distribution = append(distribution, bucket)
	}

	return distribution
}

// AverageRating calcula a média das notas gerais; zero com o conjunto vazio
func AverageRating(records []*domain.FeedbackRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0
	for _, record := range records {
		sum += record.Rating
	}

	return float64(sum) / float64(len(records))
}

// SubmetricAverages calcula a média de cada sub-métrica considerando apenas os
// registros em que ela está presente. Sub-métrica sem nenhuma ocorrência fica
// nula — incluí-la como zero distorceria as médias para baixo.
func SubmetricAverages(records []*domain.FeedbackRecord) domain.SubmetricAverages {
	var (
		aiSum, chartSum, forecastSum, insightSum     float64
		aiCount, chartCount, forecastCount, insCount int
	)

	for _, record := range records {
		if record.AIQuality != nil {
			aiSum += *record.AIQuality
			aiCount++
		}
		if record.ChartQuality != nil {
			chartSum += float64(*record.ChartQuality)
			chartCount++
		}
		if record.ForecastRating != nil {
			forecastSum += float64(*record.ForecastRating)
			forecastCount++
		}
		if record.InsightsHelpfulness != nil {
			insightSum += float64(*record.InsightsHelpfulness)
			insCount++
		}
	}

	return domain.SubmetricAverages{
		AIQuality:           averageOrNil(aiSum, aiCount),
		ChartQuality:        averageOrNil(chartSum, chartCount),
		ForecastRating:      averageOrNil(forecastSum, forecastCount),
		InsightsHelpfulness: averageOrNil(insightSum, insCount),
	}
}

func averageOrNil(sum float64, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// Trend compara a contagem de feedbacks dos últimos N dias com a dos N dias
// imediatamente anteriores, em percentual. Os casos especiais evitam a divisão
// indefinida sem perder o sinal de "atividade nova onde não havia nenhuma":
// +100% quando o período anterior é zero e o recente não, 0% quando ambos são.
func Trend(records []*domain.FeedbackRecord, now time.Time, windowDays int) float64 {
	windowStart := now.AddDate(0, 0, -windowDays)
	previousStart := now.AddDate(0, 0, -2*windowDays)

	var recent, previous int
	for _, record := range records {
		switch {
		case record.Date.After(windowStart) && !record.Date.After(now):
			recent++
		case record.Date.After(previousStart) && !record.Date.After(windowStart):
			previous++
		}
	}

	return TrendFromCounts(recent, previous)
}

// TrendFromCounts é a variação percentual período a período das contagens
func TrendFromCounts(recent, previous int) float64 {
	if previous == 0 {
		if recent > 0 {
			return 100
		}
		return 0
	}

	return float64(recent-previous) / float64(previous) * 100
}

// SentimentDistribution contabiliza os rótulos de sentimento atribuídos pelo
// classificador externo. Registros sem rótulo contam em Unlabeled e ficam fora
// das proporções.
func SentimentDistribution(records []*domain.FeedbackRecord) domain.SentimentDistribution {
	var dist domain.SentimentDistribution

	for _, record := range records {
		if record.Sentiment == nil {
			dist.Unlabeled++
			continue
		}

		switch *record.Sentiment {
		case domain.SentimentPositive:
			dist.Positive++
		case domain.SentimentNeutral:
			dist.Neutral++
		case domain.SentimentNegative:
			dist.Negative++
		default:
			dist.Unlabeled++
		}
	}

	labeled := dist.Positive + dist.Neutral + dist.Negative
	if labeled > 0 {
		dist.PositivePercentage = float64(dist.Positive) / float64(labeled) * 100
		dist.NeutralPercentage = float64(dist.Neutral) / float64(labeled) * 100
		dist.NegativePercentage = float64(dist.Negative) / float64(labeled) * 100
	}

	return dist
}

// AnalyzePatterns monta a análise de padrões e sentimento, aplicando a trava
// de dados mínimos: abaixo do limiar o resultado é apenas o status
// "collecting" com a contagem atual, nunca estatísticas parciais e instáveis.
func AnalyzePatterns(records []*domain.FeedbackRecord, minRequired int) *domain.PatternAnalysis {
	if len(records) < minRequired {
		return &domain.PatternAnalysis{
			Status:           domain.PatternAnalysisCollecting,
			FeedbackCount:    len(records),
			RequiredFeedback: minRequired,
		}
	}

	submetrics := SubmetricAverages(records)
	sentiment := SentimentDistribution(records)

	return &domain.PatternAnalysis{
		Status:            domain.PatternAnalysisReady,
		FeedbackCount:     len(records),
		RequiredFeedback:  minRequired,
		SubmetricAverages: &submetrics,
		Sentiment:         &sentiment,
	}
}
