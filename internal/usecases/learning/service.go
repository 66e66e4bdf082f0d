package learning

import (
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
	"github.com/vfg2006/forecast-insights-api/pkg/utils"
)

// Learner define a interface do avaliador de aprendizado adaptativo
type Learner interface {
	// GetAccuracySummary monta o resumo de acurácia a partir do snapshot atual
	// de previsões no repositório
	GetAccuracySummary() (*domain.AccuracySummary, error)

	// GetReadiness classifica a prontidão do sistema de aprendizado a partir
	// das contagens atuais de feedback e previsões resolvidas
	GetReadiness() (*domain.ReadinessStatus, error)
}

type Service struct {
	forecastRepository repository.ForecastRepository
	feedbackRepository repository.FeedbackRepository
	learningConfig     config.Learning
}

// NewService cria uma nova instância do serviço de aprendizado
func NewService(
	forecastRepo repository.ForecastRepository,
	feedbackRepo repository.FeedbackRepository,
	cfg *config.Config,
) Learner {
	return &Service{
		forecastRepository: forecastRepo,
		feedbackRepository: feedbackRepo,
		learningConfig:     cfg.Learning,
	}
}

// GetAccuracySummary recalcula o resumo de acurácia sob demanda; nenhum estado
// é mantido entre chamadas
func (s *Service) GetAccuracySummary() (*domain.AccuracySummary, error) {
	records, err := s.forecastRepository.ListAll()
	if err != nil {
		log.L.WithError(err).Error("learning: erro ao buscar previsões para o resumo de acurácia")
		return nil, err
	}

	summary := BuildAccuracySummary(records)

	// Arredondamento apenas na borda de exibição
	for _, group := range summary.AccuracyByType {
		if group.AverageAccuracy != nil {
			*group.AverageAccuracy = utils.RoundWithTwoDecimalPlace(*group.AverageAccuracy)
		}
		if group.AverageMAPE != nil {
			*group.AverageMAPE = utils.RoundWithTwoDecimalPlace(*group.AverageMAPE)
		}
	}

	return summary, nil
}

// GetReadiness recalcula o estado de prontidão a partir das contagens atuais
func (s *Service) GetReadiness() (*domain.ReadinessStatus, error) {
	totalFeedback, err := s.feedbackRepository.Count()
	if err != nil {
		log.L.WithError(err).Error("learning: erro ao contar feedbacks")
		return nil, err
	}

	completedForecasts, err := s.forecastRepository.CountByStatus(domain.ForecastStatusCompleted)
	if err != nil {
		log.L.WithError(err).Error("learning: erro ao contar previsões resolvidas")
		return nil, err
	}

	state := EvaluateReadiness(
		totalFeedback,
		completedForecasts,
		s.learningConfig.MinFeedbackForAnalysis,
		s.learningConfig.MinCompletedForecasts,
	)

	return &domain.ReadinessStatus{
		State:              state,
		TotalFeedback:      totalFeedback,
		CompletedForecasts: completedForecasts,
	}, nil
}
