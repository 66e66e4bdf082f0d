package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/forecast-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

const (
	forecastsTable   = "forecasts f"
	forecastsColumns = "f.id, f.forecast_type, f.domain, f.predicted_value, f.predicted_lower, f.predicted_upper, f.actual_value, f.forecast_date, f.target_date, f.status, f.accuracy, f.mape, f.created_at, f.updated_at"
)

type ForecastRepository interface {
	GetByID(id string) (*domain.ForecastRecord, error)
	ListAll() ([]*domain.ForecastRecord, error)
	ListPending() ([]*domain.ForecastRecord, error)
	CountByStatus(status domain.ForecastStatus) (int, error)
	Insert(record *domain.ForecastRecord) error
	// Resolve grava o valor real e as métricas em uma previsão ainda pendente.
	// Retorna o número de linhas afetadas: zero significa que o registro já
	// estava resolvido (a atualização é condicionada ao status).
	Resolve(id string, actualValue float64, accuracy, mape *float64) (int64, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) GetByID(id string) (*domain.ForecastRecord, error) {
	query, args, err := squirrel.
		Select(forecastsColumns).
		From(forecastsTable).
		Where(squirrel.Eq{"f.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := r.scanForecast(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
	}

	return record, nil
}

func (r *forecastRepository) ListAll() ([]*domain.ForecastRecord, error) {
	return r.list(nil)
}

func (r *forecastRepository) ListPending() ([]*domain.ForecastRecord, error) {
	return r.list(squirrel.Eq{"f.status": domain.ForecastStatusPending})
}

func (r *forecastRepository) list(where any) ([]*domain.ForecastRecord, error) {
	builder := squirrel.
		Select(forecastsColumns).
		From(forecastsTable).
		OrderBy("f.forecast_date DESC, f.id ASC").
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

	records := make([]*domain.ForecastRecord, 0)
	for rows.Next() {
		record, err := r.scanForecastRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear previsões: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *forecastRepository) CountByStatus(status domain.ForecastStatus) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(forecastsTable).
		Where(squirrel.Eq{"f.status": status}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar previsões: %w", err)
	}

	return count, nil
}

func (r *forecastRepository) Insert(record *domain.ForecastRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("forecasts").
		Columns(
			"id", "forecast_type", "domain",
			"predicted_value", "predicted_lower", "predicted_upper",
			"forecast_date", "target_date", "status",
		).
		Values(
			record.ID,
			record.Type,
			record.Domain,
			record.PredictedValue,
			record.PredictedLower,
			record.PredictedUpper,
			record.ForecastDate,
			record.TargetDate,
			record.Status,
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

func (r *forecastRepository) Resolve(id string, actualValue float64, accuracy, mape *float64) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("forecasts").
		Set("actual_value", actualValue).
		Set("accuracy", accuracy).
		Set("mape", mape).
		Set("status", domain.ForecastStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.ForecastStatusPending,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *forecastRepository) scanForecast(row *sql.Row) (*domain.ForecastRecord, error) {
	record := &domain.ForecastRecord{}

	err := row.Scan(
		&record.ID,
		&record.Type,
		&record.Domain,
		&record.PredictedValue,
		&record.PredictedLower,
		&record.PredictedUpper,
		&record.ActualValue,
		&record.ForecastDate,
		&record.TargetDate,
		&record.Status,
		&record.Accuracy,
		&record.MAPE,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *forecastRepository) scanForecastRows(rows *sql.Rows) (*domain.ForecastRecord, error) {
	record := &domain.ForecastRecord{}

	err := rows.Scan(
		&record.ID,
		&record.Type,
		&record.Domain,
		&record.PredictedValue,
		&record.PredictedLower,
		&record.PredictedUpper,
		&record.ActualValue,
		&record.ForecastDate,
		&record.TargetDate,
		&record.Status,
		&record.Accuracy,
		&record.MAPE,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
