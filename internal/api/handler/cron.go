package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/forecast-insights-api/internal/scheduler"
	"github.com/vfg2006/forecast-insights-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-insights-api/pkg/log"
)

// CronJobServices agrupa os serviços de agendamento expostos para execução manual
type CronJobServices struct {
	StatsSnapshotService *scheduler.StatsSnapshotService
}

// RunCronJob dispara manualmente um job agendado
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("job_type", jobType).Info("cron: manual job execution requested")

		switch jobType {
		case "stats-snapshot":
			// A fotografia pode demorar; roda em background como os demais jobs
			go func() {
				if err := services.StatsSnapshotService.RunSnapshot(); err != nil {
					log.L.WithError(err).Error("cron: erro na execução manual da fotografia de estatísticas")
				}
			}()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"job_type": jobType,
			"status":   "started",
		})
	})
}

// GetCronStatus retorna o estado atual dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"stats_snapshot": services.StatsSnapshotService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithField("error", err.Error()).
				Error("cron: failed to encode status response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
