package handler

import (
	"net/http"

	"github.com/vfg2006/forecast-insights-api/internal/api/handler/router"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/feedbacking"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/learning"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/scoring"
	"github.com/vfg2006/forecast-insights-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Forecasts(trackerService tracking.Tracker, scorerService scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecasts/pending",
			Method:  http.MethodGet,
			Handler: ListPendingForecasts(trackerService),
		},
		{
			Path:    "/v1/forecasts/:id/resolve",
			Method:  http.MethodPost,
			Handler: ResolveForecast(scorerService),
		},
	}
}

func Insights(learnerService learning.Learner, feedbackService feedbacking.Feedbacker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/accuracy",
			Method:  http.MethodGet,
			Handler: GetAccuracySummary(learnerService),
		},
		{
			Path:    "/v1/insights/feedback",
			Method:  http.MethodGet,
			Handler: GetFeedbackSummary(feedbackService),
		},
		{
			Path:    "/v1/insights/feedback/patterns",
			Method:  http.MethodGet,
			Handler: GetFeedbackPatterns(feedbackService),
		},
		{
			Path:    "/v1/insights/readiness",
			Method:  http.MethodGet,
			Handler: GetReadiness(learnerService),
		},
	}
}

func Feedback(service feedbacking.Feedbacker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/feedback",
			Method:  http.MethodPost,
			Handler: SubmitFeedback(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
