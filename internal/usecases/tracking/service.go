package tracking

import (
	"sort"
	"time"

	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
)

// Tracker define a interface do rastreador de ciclo de vida das previsões
type Tracker interface {
	// ListPendingForecasts retorna as previsões pendentes na ordem canônica,
	// com os campos derivados de exibição calculados a partir do instante dado
	ListPendingForecasts(now time.Time, typeFilter domain.ForecastType) ([]*domain.PendingForecast, error)
}

type Service struct {
	forecastRepository repository.ForecastRepository
	urgencyThreshold   int
}

// NewService cria uma nova instância do rastreador de ciclo de vida
func NewService(forecastRepo repository.ForecastRepository, cfg *config.Config) Tracker {
	return &Service{
		forecastRepository: forecastRepo,
		urgencyThreshold:   cfg.Learning.UrgencyThresholdDays,
	}
}

// ListPendingForecasts lista as previsões pendentes ordenadas por data de
// criação decrescente (mais recentes primeiro), com desempate por ID para
// manter a ordem determinística. Nunca altera o status armazenado.
func (s *Service) ListPendingForecasts(now time.Time, typeFilter domain.ForecastType) ([]*domain.PendingForecast, error) {
	records, err := s.forecastRepository.ListPending()
	if err != nil {
		log.L.WithError(err).Error("tracking: erro ao buscar previsões pendentes")
		return nil, err
	}

	pending := make([]*domain.PendingForecast, 0, len(records))
	for _, record := range records {
		if typeFilter != "" && record.Type != typeFilter {
			continue
		}

		days := DaysUntilTarget(record.TargetDate, now)
		pending = append(pending, &domain.PendingForecast{
			ForecastRecord:  record,
			DaysUntilTarget: days,
			Urgency:         ClassifyUrgency(days, s.urgencyThreshold),
		})
	}

	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].ForecastDate.Equal(pending[j].ForecastDate) {
			return pending[i].ForecastDate.After(pending[j].ForecastDate)
		}
		return pending[i].ID < pending[j].ID
	})

	return pending, nil
}
