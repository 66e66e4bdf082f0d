package domain

import (
	"time"
)

// FeedbackType distingue o feedback geral do feedback sobre as análises de IA
type FeedbackType string

const (
	FeedbackTypeGeneral     FeedbackType = "general"
	FeedbackTypeAIAnalytics FeedbackType = "ai_analytics"
)

// Sentiment é o rótulo atribuído por um classificador externo; o agregador
// apenas contabiliza, nunca infere o sentimento a partir do texto
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// FeedbackRecord representa o feedback de um usuário sobre o dashboard.
// As sub-métricas são campos estruturados opcionais; registros legados as
// carregavam embutidas no texto da mensagem e passam pelo extrator de
// compatibilidade antes de serem persistidas.
type FeedbackRecord struct {
	ID      string       `json:"id"`
	Date    time.Time    `json:"date"`
	Rating  int          `json:"rating"`
	Message string       `json:"message"`
	Type    FeedbackType `json:"type"`

	// Sub-métricas estruturadas (opcionais, nunca assumidas como zero)
	AIQuality           *float64 `json:"ai_quality,omitempty"`
	ChartQuality        *int     `json:"chart_quality,omitempty"`
	ForecastRating      *int     `json:"forecast_rating,omitempty"`
	InsightsHelpfulness *int     `json:"insights_helpfulness,omitempty"`
	Dataset             *string  `json:"dataset,omitempty"`

	// Rótulo de sentimento fornecido pelo classificador externo, quando existe
	Sentiment *Sentiment `json:"sentiment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// HasSubmetrics indica se o registro carrega alguma sub-métrica estruturada
func (f *FeedbackRecord) HasSubmetrics() bool {
	return f.AIQuality != nil ||
		f.ChartQuality != nil ||
		f.ForecastRating != nil ||
		f.InsightsHelpfulness != nil ||
		f.Dataset != nil
}
