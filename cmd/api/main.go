package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/forecast-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository"
	"github.com/vfg2006/forecast-insights-api/internal/api"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/scheduler"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/feedbacking"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/learning"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/scoring"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	forecastRepo := repository.NewForecastRepository(pgConn)
	feedbackRepo := repository.NewFeedbackRepository(pgConn)
	statsSnapshotRepo := repository.NewStatsSnapshotRepository(pgConn)

	scorerService := scoring.NewService(forecastRepo)
	trackerService := tracking.NewService(forecastRepo, cfg)
	feedbackService := feedbacking.NewService(feedbackRepo, forecastRepo, cfg)
	learnerService := learning.NewService(forecastRepo, feedbackRepo, cfg)

	// Inicializa o agendador da fotografia diária de estatísticas
	statsSnapshotService := scheduler.NewStatsSnapshotService(
		learnerService,
		feedbackService,
		statsSnapshotRepo,
		cfg,
	)

	if err := statsSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografia de estatísticas")
	} else {
		logrus.Info("Agendador de fotografia de estatísticas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trackerService,
		scorerService,
		learnerService,
		feedbackService,
		statsSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
