// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/feedbacking"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/learning"
	"github.com/vfg2006/forecast-insights-api/pkg/utils"
)

type StatsSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// StatsSnapshotService tira uma fotografia diária das estatísticas agregadas
// e a persiste para consumo do dashboard. É a política de cache da camada
// hospedeira prevista no desenho do motor: o agregador em si permanece puro e
// recalcula tudo sob demanda.
type StatsSnapshotService struct {
	scheduler           *gocron.Scheduler
	learningService     learning.Learner
	feedbackService     feedbacking.Feedbacker
	snapshotRepo        repository.StatsSnapshotRepository
	config              StatsSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewStatsSnapshotService(
	learningService learning.Learner,
	feedbackService feedbacking.Feedbacker,
	snapshotRepo repository.StatsSnapshotRepository,
	cfg *config.Config,
) *StatsSnapshotService {
	snapshotConfig := StatsSnapshotConfig{
		CronSchedule: cfg.StatsSnapshotSync.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.StatsSnapshotSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de fotografia de estatísticas carregada")

	return &StatsSnapshotService{
		scheduler:       scheduler,
		learningService: learningService,
		feedbackService: feedbackService,
		snapshotRepo:    snapshotRepo,
		config:          snapshotConfig,
	}
}

func (s *StatsSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de fotografia de estatísticas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fotografia de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na fotografia de estatísticas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fotografia de estatísticas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fotografia de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot recalcula os resumos agregados a partir do snapshot atual do
// repositório e os persiste para a data de hoje
func (s *StatsSnapshotService) RunSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Fotografia de estatísticas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	now := time.Now()

	logrus.Info("Iniciando fotografia de estatísticas agregadas")

	accuracySummary, err := s.learningService.GetAccuracySummary()
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar resumo de acurácia para a fotografia")
		return err
	}

	feedbackSummary, err := s.feedbackService.GetFeedbackSummary(now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar resumo de feedback para a fotografia")
		return err
	}

	snapshot := &domain.StatsSnapshot{
		Date:            now,
		AccuracySummary: accuracySummary,
		FeedbackSummary: feedbackSummary,
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Fotografia montada: ", utils.PrettyJson(snapshot))
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao persistir fotografia de estatísticas")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"date":                now.Format(time.DateOnly),
		"total_forecasts":     accuracySummary.TotalForecasts,
		"completed_forecasts": accuracySummary.CompletedForecasts,
		"total_feedback":      feedbackSummary.TotalFeedback,
	}).Info("Fotografia de estatísticas persistida com sucesso")

	return nil
}

// Status retorna o estado atual do agendador para o endpoint de cron
func (s *StatsSnapshotService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
