package handler

import (
	"encoding/json"
	"net/http"
	"time"

	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/feedbacking"
	"github.com/vfg2006/forecast-insights-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
)

// SubmitFeedback registra um novo feedback de usuário
func SubmitFeedback(service feedbacking.Feedbacker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input feedbacking.SubmitFeedbackInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			wrapped := errors.Wrap(err, "decoding feedback payload")
			logger.WithField("error", wrapped.Error()).
				Warn("feedback: invalid payload")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		record, err := service.SubmitFeedback(&input, time.Now())
		if err != nil {
			logger.WithField("error", err.Error()).
				Warn("feedback: submission rejected")

			switch {
			case stderrors.Is(err, feedbacking.ErrInvalidRating):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRating, err.Error(), nil)
			case stderrors.Is(err, feedbacking.ErrInvalidFeedbackType):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithField("feedback_id", record.ID).Info("feedback: feedback recorded")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithField("error", err.Error()).
				Error("feedback: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
