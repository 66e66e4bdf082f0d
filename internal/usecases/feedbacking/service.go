package feedbacking

import (
	"time"

	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
	"github.com/vfg2006/forecast-insights-api/pkg/utils"
)

// Feedbacker define a interface do serviço de feedback
type Feedbacker interface {
	// SubmitFeedback registra um novo feedback, aplicando o extrator de
	// compatibilidade quando a mensagem ainda carrega tags legadas
	SubmitFeedback(input *SubmitFeedbackInput, now time.Time) (*domain.FeedbackRecord, error)

	// GetFeedbackSummary monta o resumo agregado de feedback a partir do
	// instante de referência dado
	GetFeedbackSummary(now time.Time) (*domain.FeedbackSummary, error)

	// AnalyzePatterns retorna a análise de padrões e sentimento, ou o estado
	// "collecting" enquanto não há registros suficientes
	AnalyzePatterns() (*domain.PatternAnalysis, error)
}

// SubmitFeedbackInput é o payload de entrada de um novo feedback
type SubmitFeedbackInput struct {
	Rating    int                 `json:"rating"`
	Message   string              `json:"message"`
	Type      domain.FeedbackType `json:"type"`
	Date      *time.Time          `json:"date,omitempty"`
	Sentiment *domain.Sentiment   `json:"sentiment,omitempty"`

	// Sub-métricas estruturadas (caminho primário de dados)
	AIQuality           *float64 `json:"ai_quality,omitempty"`
	ChartQuality        *int     `json:"chart_quality,omitempty"`
	ForecastRating      *int     `json:"forecast_rating,omitempty"`
	InsightsHelpfulness *int     `json:"insights_helpfulness,omitempty"`
	Dataset             *string  `json:"dataset,omitempty"`
}

type Service struct {
	feedbackRepository repository.FeedbackRepository
	forecastRepository repository.ForecastRepository
	learningConfig     config.Learning
}

// NewService cria uma nova instância do serviço de feedback
func NewService(
	feedbackRepo repository.FeedbackRepository,
	forecastRepo repository.ForecastRepository,
	cfg *config.Config,
) Feedbacker {
	return &Service{
		feedbackRepository: feedbackRepo,
		forecastRepository: forecastRepo,
		learningConfig:     cfg.Learning,
	}
}

// SubmitFeedback valida, normaliza e persiste um novo registro de feedback
func (s *Service) SubmitFeedback(input *SubmitFeedbackInput, now time.Time) (*domain.FeedbackRecord, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	feedbackType := input.Type
	if feedbackType == "" {
		feedbackType = domain.FeedbackTypeGeneral
	}
	if feedbackType != domain.FeedbackTypeGeneral && feedbackType != domain.FeedbackTypeAIAnalytics {
		return nil, ErrInvalidFeedbackType
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Error("feedbacking: erro ao gerar ID do feedback")
		return nil, err
	}

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	record := &domain.FeedbackRecord{
		ID:                  id,
		Date:                date,
		Rating:              input.Rating,
		Message:             input.Message,
		Type:                feedbackType,
		Sentiment:           input.Sentiment,
		AIQuality:           input.AIQuality,
		ChartQuality:        input.ChartQuality,
		ForecastRating:      input.ForecastRating,
		InsightsHelpfulness: input.InsightsHelpfulness,
		Dataset:             input.Dataset,
	}

	// Compatibilidade com clientes antigos que ainda embutem as sub-métricas
	// no corpo da mensagem
	ApplyLegacySubmetrics(record)

	if err := s.feedbackRepository.Insert(record); err != nil {
		log.L.WithError(err).WithField("feedback_id", record.ID).
			Error("feedbacking: erro ao persistir feedback")
		return nil, ErrDatabaseOperation
	}

	log.L.WithFields(log.Fields{
		"feedback_id":   record.ID,
		"feedback_type": string(record.Type),
	}).Info("feedbacking: feedback registrado com sucesso")

	return record, nil
}

// GetFeedbackSummary monta o resumo agregado consumido pelo dashboard. Os
// percentuais e médias expostos são arredondados para exibição; as funções
// puras de agregação preservam a precisão completa.
func (s *Service) GetFeedbackSummary(now time.Time) (*domain.FeedbackSummary, error) {
	records, err := s.feedbackRepository.ListAll()
	if err != nil {
		log.L.WithError(err).Error("feedbacking: erro ao buscar feedbacks")
		return nil, ErrDatabaseOperation
	}

	completed, err := s.forecastRepository.CountByStatus(domain.ForecastStatusCompleted)
	if err != nil {
		log.L.WithError(err).Error("feedbacking: erro ao contar previsões resolvidas")
		return nil, ErrDatabaseOperation
	}

	distribution := RatingDistribution(records)
	for i := range distribution {
		distribution[i].Percentage = utils.RoundWithTwoDecimalPlace(distribution[i].Percentage)
	}

	submetrics := SubmetricAverages(records)
	roundAverage(submetrics.AIQuality)
	roundAverage(submetrics.ChartQuality)
	roundAverage(submetrics.ForecastRating)
	roundAverage(submetrics.InsightsHelpfulness)

	aiFeedbackCount := 0
	for _, record := range records {
		if record.Type == domain.FeedbackTypeAIAnalytics {
			aiFeedbackCount++
		}
	}

	responseRate := 0.0
	if completed > 0 {
		responseRate = float64(aiFeedbackCount) / float64(completed) * 100
	}

	return &domain.FeedbackSummary{
		TotalFeedback:       len(records),
		AverageRating:       utils.RoundWithTwoDecimalPlace(AverageRating(records)),
		ResponseRate:        utils.RoundWithTwoDecimalPlace(responseRate),
		Trend:               utils.RoundWithTwoDecimalPlace(Trend(records, now, s.learningConfig.TrendWindowDays)),
		RatingDistribution:  distribution,
		AISubmetricAverages: submetrics,
	}, nil
}

// AnalyzePatterns aplica a trava de dados mínimos antes de expor estatísticas
func (s *Service) AnalyzePatterns() (*domain.PatternAnalysis, error) {
	records, err := s.feedbackRepository.ListAll()
	if err != nil {
		log.L.WithError(err).Error("feedbacking: erro ao buscar feedbacks para análise de padrões")
		return nil, ErrDatabaseOperation
	}

	return AnalyzePatterns(records, s.learningConfig.MinFeedbackForAnalysis), nil
}

func roundAverage(value *float64) {
	if value != nil {
		*value = utils.RoundWithTwoDecimalPlace(*value)
	}
}
