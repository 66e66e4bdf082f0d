package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/forecast-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

const (
	statsSnapshotsTable = "stats_snapshots ss"
)

// StatsSnapshotRepository persiste as fotografias diárias das estatísticas
// agregadas. É a política de cache da camada hospedeira: o motor nunca lê
// esses registros para calcular, apenas o dashboard os consome.
type StatsSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.StatsSnapshot) error
	GetByDate(date time.Time) (*domain.StatsSnapshot, error)
}

type statsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewStatsSnapshotRepository(conn *postgres.Connection) StatsSnapshotRepository {
	return &statsSnapshotRepository{
		conn: conn,
	}
}

func (r *statsSnapshotRepository) SaveOrUpdate(snapshot *domain.StatsSnapshot) error {
	var accuracyJSON, feedbackJSON []byte
	var err error

	if snapshot.AccuracySummary != nil {
		accuracyJSON, err = json.Marshal(snapshot.AccuracySummary)
		if err != nil {
			return fmt.Errorf("erro ao serializar AccuracySummary para JSON: %w", err)
		}
	}

	if snapshot.FeedbackSummary != nil {
		feedbackJSON, err = json.Marshal(snapshot.FeedbackSummary)
		if err != nil {
			return fmt.Errorf("erro ao serializar FeedbackSummary para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("stats_snapshots").
		Columns("date", "accuracy_summary", "feedback_summary").
		Values(
			snapshot.Date.Format(time.DateOnly),
			accuracyJSON,
			feedbackJSON,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				accuracy_summary = EXCLUDED.accuracy_summary,
				feedback_summary = EXCLUDED.feedback_summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *statsSnapshotRepository) GetByDate(date time.Time) (*domain.StatsSnapshot, error) {
	query, args, err := squirrel.
		Select("ss.id, ss.date, ss.accuracy_summary, ss.feedback_summary, ss.created_at, ss.updated_at").
		From(statsSnapshotsTable).
		Where(squirrel.Eq{"ss.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.StatsSnapshot{}
	var accuracyJSON, feedbackJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&accuracyJSON,
		&feedbackJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if accuracyJSON != nil {
		summary := &domain.AccuracySummary{}
		if err := json.Unmarshal(accuracyJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de accuracy_summary: %w", err)
		}
		snapshot.AccuracySummary = summary
	}

	if feedbackJSON != nil {
		summary := &domain.FeedbackSummary{}
		if err := json.Unmarshal(feedbackJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de feedback_summary: %w", err)
		}
		snapshot.FeedbackSummary = summary
	}

	return snapshot, nil
}
