package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/scoring"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/tracking"
	"github.com/vfg2006/forecast-insights-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
	"github.com/vfg2006/forecast-insights-api/pkg/utils"
)

// ListPendingForecasts lista as previsões pendentes na ordem canônica, com
// dias até a data alvo e classificação de urgência
func ListPendingForecasts(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		typeFilter := domain.ForecastType(r.URL.Query().Get("type"))
		if typeFilter != "" && !typeFilter.IsValid() {
			logger.WithField("forecast_type", string(typeFilter)).
				Warn("forecasts: invalid type filter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "unknown forecast type", nil)
			return
		}

		// Instante de referência opcional para os campos derivados; o padrão é
		// o momento da requisição
		asOf, err := utils.ParseDate(r.URL.Query().Get("as_of"))
		if err != nil {
			logger.WithFields(log.Fields{
				"as_of": r.URL.Query().Get("as_of"),
				"error": err.Error(),
			}).Warn("forecasts: invalid as_of parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "as_of must be formatted as YYYY-MM-DD", nil)
			return
		}

		now := time.Now()
		if !asOf.IsZero() {
			now = *asOf
		}

		pending, err := service.ListPendingForecasts(now, typeFilter)
		if err != nil {
			logger.WithField("error", err.Error()).
				Error("forecasts: failed to list pending forecasts")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithField("forecast_count", len(pending)).
			Info("forecasts: pending forecasts listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pending); err != nil {
			logger.WithField("error", err.Error()).
				Error("forecasts: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type resolveForecastRequest struct {
	ActualValue *float64 `json:"actual_value"`
}

// ResolveForecast fecha o ciclo de vida de uma previsão pendente
func ResolveForecast(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("forecast_id", id).Info("forecasts: resolving forecast")

		var request resolveForecastRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithFields(log.Fields{
				"forecast_id": id,
				"error":       err.Error(),
			}).Warn("forecasts: invalid resolution payload")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if request.ActualValue == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "actual_value is required", nil)
			return
		}

		result, err := service.Resolve(id, *request.ActualValue)
		if err != nil {
			logger.WithFields(log.Fields{
				"forecast_id": id,
				"error":       err.Error(),
			}).Warn("forecasts: resolution failed")

			switch {
			case errors.Is(err, scoring.ErrForecastNotFound):
				apiErrors.WriteError(w, apiErrors.ErrForecastNotFound, err.Error(), nil)
			case errors.Is(err, scoring.ErrAlreadyResolved):
				apiErrors.WriteError(w, apiErrors.ErrAlreadyResolved, err.Error(), nil)
			case errors.Is(err, scoring.ErrInvalidMeasurement):
				apiErrors.WriteError(w, apiErrors.ErrInvalidMeasurement, err.Error(), nil)
			case errors.Is(err, scoring.ErrForecastIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithField("forecast_id", id).Info("forecasts: forecast resolved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"forecast_id": id,
				"error":       err.Error(),
			}).Error("forecasts: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
