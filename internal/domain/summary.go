package domain

import (
	"time"
)

// TypeAccuracy agrega a qualidade das previsões resolvidas de um tipo.
// As médias ficam nulas quando nenhum registro do grupo possui métrica
// aplicável (valor real zero), nunca zeradas.
type TypeAccuracy struct {
	AverageAccuracy *float64 `json:"average_accuracy"`
	AverageMAPE     *float64 `json:"average_mape"`
	Count           int      `json:"count"`
}

// AccuracySummary é a visão agregada de acurácia consumida pelo dashboard
type AccuracySummary struct {
	TotalForecasts     int                            `json:"total_forecasts"`
	CompletedForecasts int                            `json:"completed_forecasts"`
	PendingForecasts   int                            `json:"pending_forecasts"`
	AccuracyByType     map[ForecastType]*TypeAccuracy `json:"accuracy_by_type"`
}

// RatingBucket é a contagem e proporção de feedbacks em uma nota inteira
type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SubmetricAverages agrega as sub-métricas de IA presentes nos feedbacks.
// Cada média considera apenas os registros em que a sub-métrica existe;
// nula quando nenhum registro a informa.
type SubmetricAverages struct {
	AIQuality           *float64 `json:"ai_quality"`
	ChartQuality        *float64 `json:"chart_quality"`
	ForecastRating      *float64 `json:"forecast_rating"`
	InsightsHelpfulness *float64 `json:"insights_helpfulness"`
}

// FeedbackSummary é a visão agregada de feedback consumida pelo dashboard
type FeedbackSummary struct {
	TotalFeedback       int               `json:"total_feedback"`
	AverageRating       float64           `json:"average_rating"`
	ResponseRate        float64           `json:"response_rate"`
	Trend               float64           `json:"trend"`
	RatingDistribution  []RatingBucket    `json:"rating_distribution"`
	AISubmetricAverages SubmetricAverages `json:"ai_submetric_averages"`
}

// SentimentDistribution contabiliza os rótulos atribuídos pelo classificador
// externo. Registros sem rótulo entram em Unlabeled e ficam fora das proporções.
type SentimentDistribution struct {
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	Unlabeled          int     `json:"unlabeled"`
	PositivePercentage float64 `json:"positive_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
}

// PatternAnalysisStatus indica se há dados suficientes para a análise de padrões
type PatternAnalysisStatus string

const (
	PatternAnalysisCollecting PatternAnalysisStatus = "collecting"
	PatternAnalysisReady      PatternAnalysisStatus = "ready"
)

// PatternAnalysis é o resultado da análise de padrões e sentimento do feedback.
// Abaixo do mínimo de registros configurado, apenas Status e FeedbackCount são
// preenchidos (estado "collecting"), nunca estatísticas parciais.
type PatternAnalysis struct {
	Status            PatternAnalysisStatus  `json:"status"`
	FeedbackCount     int                    `json:"feedback_count"`
	RequiredFeedback  int                    `json:"required_feedback"`
	SubmetricAverages *SubmetricAverages     `json:"submetric_averages,omitempty"`
	Sentiment         *SentimentDistribution `json:"sentiment,omitempty"`
}

// ReadinessState classifica a maturidade do sistema de aprendizado
type ReadinessState string

const (
	ReadinessCollectingData  ReadinessState = "collecting_data"
	ReadinessPartiallyActive ReadinessState = "partially_active"
	ReadinessFullyActive     ReadinessState = "fully_active"
)

// ReadinessStatus é o estado de prontidão com as contagens que o determinaram
type ReadinessStatus struct {
	State              ReadinessState `json:"state"`
	TotalFeedback      int            `json:"total_feedback"`
	CompletedForecasts int            `json:"completed_forecasts"`
}

// StatsSnapshot é a fotografia diária das estatísticas agregadas, persistida
// pelo agendador. O cache é responsabilidade da camada hospedeira; o motor em
// si recalcula tudo sob demanda.
type StatsSnapshot struct {
	ID              int64            `json:"id"`
	Date            time.Time        `json:"date"`
	AccuracySummary *AccuracySummary `json:"accuracy_summary"`
	FeedbackSummary *FeedbackSummary `json:"feedback_summary"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
