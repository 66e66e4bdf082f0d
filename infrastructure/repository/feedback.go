package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/forecast-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

const (
	feedbackTable   = "feedback fb"
	feedbackColumns = "fb.id, fb.date, fb.rating, fb.message, fb.type, fb.ai_quality, fb.chart_quality, fb.forecast_rating, fb.insights_helpfulness, fb.dataset, fb.sentiment, fb.created_at"
)

type FeedbackRepository interface {
	Insert(record *domain.FeedbackRecord) error
	ListAll() ([]*domain.FeedbackRecord, error)
	ListSince(since time.Time) ([]*domain.FeedbackRecord, error)
	Count() (int, error)
}

type feedbackRepository struct {
	conn *postgres.Connection
}

func NewFeedbackRepository(conn *postgres.Connection) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) Insert(record *domain.FeedbackRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("feedback").
		Columns(
			"id", "date", "rating", "message", "type",
			"ai_quality", "chart_quality", "forecast_rating", "insights_helpfulness",
			"dataset", "sentiment",
		).
		Values(
			record.ID,
			record.Date,
			record.Rating,
			record.Message,
			record.Type,
			record.AIQuality,
			record.ChartQuality,
			record.ForecastRating,
			record.InsightsHelpfulness,
			record.Dataset,
			record.Sentiment,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *feedbackRepository) ListAll() ([]*domain.FeedbackRecord, error) {
	return r.list(nil)
}

func (r *feedbackRepository) ListSince(since time.Time) ([]*domain.FeedbackRecord, error) {
	return r.list(squirrel.GtOrEq{"fb.date": since})
}

func (r *feedbackRepository) list(where any) ([]*domain.FeedbackRecord, error) {
	builder := squirrel.
		Select(feedbackColumns).
		From(feedbackTable).
		OrderBy("fb.date DESC, fb.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.FeedbackRecord, 0)
	for rows.Next() {
		record := &domain.FeedbackRecord{}

		var sentiment sql.NullString
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Rating,
			&record.Message,
			&record.Type,
			&record.AIQuality,
			&record.ChartQuality,
			&record.ForecastRating,
			&record.InsightsHelpfulness,
			&record.Dataset,
			&sentiment,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear feedbacks: %w", err)
		}

		if sentiment.Valid {
			label := domain.Sentiment(sentiment.String)
			record.Sentiment = &label
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *feedbackRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(feedbackTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar feedbacks: %w", err)
	}

	return count, nil
}
