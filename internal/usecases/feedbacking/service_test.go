package feedbacking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/forecast-insights-api/internal/config"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Feedbacker, *mocks.MockFeedbackRepository, *mocks.MockForecastRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFeedbackRepo := mocks.NewMockFeedbackRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)

	service := NewService(mockFeedbackRepo, mockForecastRepo, &config.Config{
		Learning: config.Learning{
			MinFeedbackForAnalysis: 10,
			TrendWindowDays:        7,
		},
	})

	return service, mockFeedbackRepo, mockForecastRepo
}

func TestService_SubmitFeedback(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Deve persistir um feedback válido com ID gerado e data padrão", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		var persisted *domain.FeedbackRecord
		mockFeedbackRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(record *domain.FeedbackRecord) error {
				persisted = record
				return nil
			})

		record, err := service.SubmitFeedback(&SubmitFeedbackInput{
			Rating:  4,
			Message: "Painel muito útil",
		}, now)

		assert.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, now, record.Date)
		assert.Equal(t, domain.FeedbackTypeGeneral, record.Type)
		assert.Equal(t, persisted, record)
	})

	t.Run("Mensagem com tags legadas deve passar pelo extrator antes de persistir", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		mockFeedbackRepo.EXPECT().Insert(gomock.Any()).Return(nil)

		record, err := service.SubmitFeedback(&SubmitFeedbackInput{
			Rating:  5,
			Message: "Great dashboard [AI Quality: 4.5/5][Charts: 5/5]",
			Type:    domain.FeedbackTypeAIAnalytics,
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, "Great dashboard", record.Message)
		assert.NotNil(t, record.AIQuality)
		assert.Equal(t, 4.5, *record.AIQuality)
		assert.NotNil(t, record.ChartQuality)
		assert.Equal(t, 5, *record.ChartQuality)
	})

	t.Run("Sub-métricas estruturadas têm precedência sobre tags na mensagem", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		mockFeedbackRepo.EXPECT().Insert(gomock.Any()).Return(nil)

		record, err := service.SubmitFeedback(&SubmitFeedbackInput{
			Rating:    5,
			Message:   "Texto com tag [Charts: 2/5]",
			AIQuality: floatPtr(4),
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, "Texto com tag [Charts: 2/5]", record.Message)
		assert.Equal(t, 4.0, *record.AIQuality)
		assert.Nil(t, record.ChartQuality)
	})

	t.Run("Nota fora da faixa deve retornar erro de validação", func(t *testing.T) {
		service, _, _ := newTestService(t)

		for _, rating := range []int{0, 6, -1} {
			record, err := service.SubmitFeedback(&SubmitFeedbackInput{Rating: rating}, now)
			assert.ErrorIs(t, err, ErrInvalidRating)
			assert.Nil(t, record)
		}
	})

	t.Run("Tipo de feedback desconhecido deve retornar erro de validação", func(t *testing.T) {
		service, _, _ := newTestService(t)

		record, err := service.SubmitFeedback(&SubmitFeedbackInput{
			Rating: 4,
			Type:   domain.FeedbackType("spam"),
		}, now)

		assert.ErrorIs(t, err, ErrInvalidFeedbackType)
		assert.Nil(t, record)
	})

	t.Run("Falha do repositório deve ser mapeada para erro de banco", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		mockFeedbackRepo.EXPECT().Insert(gomock.Any()).Return(assert.AnError)

		record, err := service.SubmitFeedback(&SubmitFeedbackInput{Rating: 4}, now)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, record)
	})
}

func TestService_GetFeedbackSummary(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Deve montar o resumo agregado com taxa de resposta e tendência", func(t *testing.T) {
		service, mockFeedbackRepo, mockForecastRepo := newTestService(t)

		records := []*domain.FeedbackRecord{
			{Rating: 5, Type: domain.FeedbackTypeAIAnalytics, Date: now.AddDate(0, 0, -1), AIQuality: floatPtr(4)},
			{Rating: 4, Type: domain.FeedbackTypeAIAnalytics, Date: now.AddDate(0, 0, -2)},
			{Rating: 3, Type: domain.FeedbackTypeGeneral, Date: now.AddDate(0, 0, -10)},
		}

		mockFeedbackRepo.EXPECT().ListAll().Return(records, nil)
		mockForecastRepo.EXPECT().
			CountByStatus(domain.ForecastStatusCompleted).
			Return(8, nil)

		summary, err := service.GetFeedbackSummary(now)

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.TotalFeedback)
		assert.Equal(t, 4.0, summary.AverageRating)

		// 2 feedbacks de IA sobre 8 previsões resolvidas
		assert.Equal(t, 25.0, summary.ResponseRate)

		// 2 registros na janela recente contra 1 na anterior
		assert.Equal(t, 100.0, summary.Trend)

		assert.Len(t, summary.RatingDistribution, 5)
		assert.NotNil(t, summary.AISubmetricAverages.AIQuality)
		assert.Equal(t, 4.0, *summary.AISubmetricAverages.AIQuality)
	})

	t.Run("Sem previsões resolvidas a taxa de resposta deve ser zero, nunca NaN", func(t *testing.T) {
		service, mockFeedbackRepo, mockForecastRepo := newTestService(t)

		mockFeedbackRepo.EXPECT().ListAll().Return([]*domain.FeedbackRecord{
			{Rating: 5, Type: domain.FeedbackTypeAIAnalytics, Date: now},
		}, nil)
		mockForecastRepo.EXPECT().
			CountByStatus(domain.ForecastStatusCompleted).
			Return(0, nil)

		summary, err := service.GetFeedbackSummary(now)

		assert.NoError(t, err)
		assert.Zero(t, summary.ResponseRate)
	})

	t.Run("Duas chamadas com o mesmo instante devem produzir resumos idênticos", func(t *testing.T) {
		service, mockFeedbackRepo, mockForecastRepo := newTestService(t)

		records := []*domain.FeedbackRecord{
			{Rating: 5, Type: domain.FeedbackTypeAIAnalytics, Date: now.AddDate(0, 0, -3)},
			{Rating: 2, Type: domain.FeedbackTypeGeneral, Date: now.AddDate(0, 0, -9)},
		}

		mockFeedbackRepo.EXPECT().ListAll().Return(records, nil).Times(2)
		mockForecastRepo.EXPECT().
			CountByStatus(domain.ForecastStatusCompleted).
			Return(4, nil).Times(2)

		first, err := service.GetFeedbackSummary(now)
		assert.NoError(t, err)

		second, err := service.GetFeedbackSummary(now)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Falha ao listar feedbacks deve ser mapeada para erro de banco", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		mockFeedbackRepo.EXPECT().ListAll().Return(nil, assert.AnError)

		summary, err := service.GetFeedbackSummary(now)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, summary)
	})
}

func TestService_AnalyzePatterns(t *testing.T) {
	t.Run("Abaixo do mínimo configurado deve retornar o estado de coleta", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		records := make([]*domain.FeedbackRecord, 9)
		for i := range records {
			records[i] = &domain.FeedbackRecord{Rating: 4}
		}
		mockFeedbackRepo.EXPECT().ListAll().Return(records, nil)

		analysis, err := service.AnalyzePatterns()

		assert.NoError(t, err)
		assert.Equal(t, domain.PatternAnalysisCollecting, analysis.Status)
		assert.Equal(t, 9, analysis.FeedbackCount)
		assert.Equal(t, 10, analysis.RequiredFeedback)
		assert.Nil(t, analysis.SubmetricAverages)
	})

	t.Run("No mínimo configurado deve liberar a análise completa", func(t *testing.T) {
		service, mockFeedbackRepo, _ := newTestService(t)

		positive := domain.SentimentPositive
		records := make([]*domain.FeedbackRecord, 10)
		for i := range records {
			records[i] = &domain.FeedbackRecord{Rating: 4, Sentiment: &positive}
		}
		mockFeedbackRepo.EXPECT().ListAll().Return(records, nil)

		analysis, err := service.AnalyzePatterns()

		assert.NoError(t, err)
		assert.Equal(t, domain.PatternAnalysisReady, analysis.Status)
		assert.NotNil(t, analysis.Sentiment)
		assert.Equal(t, 10, analysis.Sentiment.Positive)
	})
}
