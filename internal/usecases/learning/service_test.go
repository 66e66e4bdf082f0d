package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Learner, *mocks.MockForecastRepository, *mocks.MockFeedbackRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockFeedbackRepo := mocks.NewMockFeedbackRepository(ctrl)

	service := NewService(mockForecastRepo, mockFeedbackRepo, &config.Config{
		Learning: config.Learning{
			MinFeedbackForAnalysis: 10,
			MinCompletedForecasts:  10,
		},
	})

	return service, mockForecastRepo, mockFeedbackRepo
}

func TestService_GetAccuracySummary(t *testing.T) {
	t.Run("Deve montar o resumo com as médias arredondadas para exibição", func(t *testing.T) {
		service, mockForecastRepo, _ := newTestService(t)

		mockForecastRepo.EXPECT().ListAll().Return([]*domain.ForecastRecord{
			{
				Type:     domain.ForecastTypeSales,
				Status:   domain.ForecastStatusCompleted,
				Accuracy: floatPtr(90.5),
				MAPE:     floatPtr(9.5),
			},
			{
				Type:     domain.ForecastTypeSales,
				Status:   domain.ForecastStatusCompleted,
				Accuracy: floatPtr(80.12),
				MAPE:     floatPtr(19.88),
			},
			{Type: domain.ForecastTypeStock, Status: domain.ForecastStatusPending},
		}, nil)

		summary, err := service.GetAccuracySummary()

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.TotalForecasts)
		assert.Equal(t, 2, summary.CompletedForecasts)
		assert.Equal(t, 1, summary.PendingForecasts)

		sales := summary.AccuracyByType[domain.ForecastTypeSales]
		assert.NotNil(t, sales)

		// (90.5 + 80.12) / 2 = 85.31
		assert.Equal(t, 85.31, *sales.AverageAccuracy)
		assert.Equal(t, 14.69, *sales.AverageMAPE)
	})

	t.Run("Erro do repositório deve ser propagado", func(t *testing.T) {
		service, mockForecastRepo, _ := newTestService(t)

		mockForecastRepo.EXPECT().ListAll().Return(nil, assert.AnError)

		summary, err := service.GetAccuracySummary()

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_GetReadiness(t *testing.T) {
	tests := []struct {
		name               string
		totalFeedback      int
		completedForecasts int
		expectedState      domain.ReadinessState
	}{
		{
			name:               "Contagens zeradas devem retornar coletando",
			totalFeedback:      0,
			completedForecasts: 0,
			expectedState:      domain.ReadinessCollectingData,
		},
		{
			name:               "Apenas previsões no limiar devem retornar parcialmente ativo",
			totalFeedback:      9,
			completedForecasts: 12,
			expectedState:      domain.ReadinessPartiallyActive,
		},
		{
			name:               "Ambos os limiares atingidos devem retornar totalmente ativo",
			totalFeedback:      10,
			completedForecasts: 10,
			expectedState:      domain.ReadinessFullyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockForecastRepo, mockFeedbackRepo := newTestService(t)

			mockFeedbackRepo.EXPECT().Count().Return(tt.totalFeedback, nil)
			mockForecastRepo.EXPECT().
				CountByStatus(domain.ForecastStatusCompleted).
				Return(tt.completedForecasts, nil)

			status, err := service.GetReadiness()

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedState, status.State)
			assert.Equal(t, tt.totalFeedback, status.TotalFeedback)
			assert.Equal(t, tt.completedForecasts, status.CompletedForecasts)
		})
	}

	t.Run("Erro ao contar feedbacks deve ser propagado", func(t *testing.T) {
		service, _, mockFeedbackRepo := newTestService(t)

		mockFeedbackRepo.EXPECT().Count().Return(0, assert.AnError)

		status, err := service.GetReadiness()

		assert.Error(t, err)
		assert.Nil(t, status)
	})
}
