package scoring

import (
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
)

// Scorer define a interface da operação de resolução de previsões
type Scorer interface {
	// Resolve fecha o ciclo de vida de uma previsão pendente, anexando o valor
	// real e as métricas de acurácia calculadas naquele momento
	Resolve(forecastID string, actualValue float64) (*domain.ResolutionResult, error)
}

type Service struct {
	forecastRepository repository.ForecastRepository
}

// NewService cria uma nova instância do serviço de pontuação
func NewService(forecastRepo repository.ForecastRepository) Scorer {
	return &Service{
		forecastRepository: forecastRepo,
	}
}

// Resolve anexa o valor real a uma previsão pendente e calcula accuracy/MAPE.
// A transição para "completed" é irreversível: uma segunda resolução retorna
// ErrAlreadyResolved e não altera as métricas já gravadas.
func (s *Service) Resolve(forecastID string, actualValue float64) (*domain.ResolutionResult, error) {
	if forecastID == "" {
		return nil, ErrForecastIDRequired
	}

	forecast, err := s.forecastRepository.GetByID(forecastID)
	if err != nil {
		log.L.WithError(err).WithField("forecast_id", forecastID).
			Error("scoring: erro ao buscar previsão no repositório")
		return nil, NewScoringError(ErrDatabaseOperation, forecastID, err.Error())
	}

	if forecast == nil {
		return nil, NewScoringError(ErrForecastNotFound, forecastID, "")
	}

	if forecast.IsCompleted() {
		return nil, NewScoringError(ErrAlreadyResolved, forecastID, "")
	}

	score, err := Calculate(forecast.PredictedValue, actualValue)
	if err != nil {
		return nil, NewScoringError(err, forecastID, "")
	}

	// A atualização é condicionada ao status pendente; se outra submissão
	// resolveu a previsão nesse meio tempo, nenhuma linha é afetada
	affected, err := s.forecastRepository.Resolve(forecastID, actualValue, score.Accuracy, score.MAPE)
	if err != nil {
		log.L.WithError(err).WithField("forecast_id", forecastID).
			Error("scoring: erro ao gravar resolução da previsão")
		return nil, NewScoringError(ErrDatabaseOperation, forecastID, err.Error())
	}

	if affected == 0 {
		return nil, NewScoringError(ErrAlreadyResolved, forecastID, "resolução concorrente detectada")
	}

	log.L.WithFields(log.Fields{
		"forecast_id": forecastID,
	}).Info("scoring: previsão resolvida com sucesso")

	return &domain.ResolutionResult{
		ForecastID:    forecastID,
		AbsoluteError: score.AbsoluteError,
		Accuracy:      score.Accuracy,
		MAPE:          score.MAPE,
	}, nil
}
