package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/forecast-insights-api/internal/usecases/feedbacking"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/learning"
	"github.com/vfg2006/forecast-insights-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
)

// GetAccuracySummary retorna o resumo agregado de acurácia das previsões
func GetAccuracySummary(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetAccuracySummary()
		if err != nil {
			logger.WithField("error", err.Error()).
				Error("insights: failed to build accuracy summary")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_forecasts":     summary.TotalForecasts,
			"completed_forecasts": summary.CompletedForecasts,
		}).Info("insights: accuracy summary built")

		writeJSON(w, logger, summary)
	})
}

// GetFeedbackSummary retorna o resumo agregado de feedback
func GetFeedbackSummary(service feedbacking.Feedbacker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetFeedbackSummary(time.Now())
		if err != nil {
			logger.WithField("error", err.Error()).
				Error("insights: failed to build feedback summary")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithField("total_feedback", summary.TotalFeedback).
			Info("insights: feedback summary built")

		writeJSON(w, logger, summary)
	})
}

// GetFeedbackPatterns retorna a análise de padrões e sentimento, ou o estado
// "collecting" enquanto não há registros suficientes
func GetFeedbackPatterns(service feedbacking.Feedbacker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		analysis, err := service.AnalyzePatterns()
		if err != nil {
			logger.WithField("error", err.Error()).
				Error("insights: failed to analyze feedback patterns")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"status":         string(analysis.Status),
			"feedback_count": analysis.FeedbackCount,
		}).Info("insights: feedback patterns analyzed")

		writeJSON(w, logger, analysis)
	})
}

// GetReadiness retorna o estado de prontidão do sistema de aprendizado
func GetReadiness(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := service.GetReadiness()
		if err != nil {
			logger.WithField("error", err.Error()).
				Error("insights: failed to evaluate readiness")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithField("readiness_state", string(status.State)).
			Info("insights: readiness evaluated")

		writeJSON(w, logger, status)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).
			Error("insights: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
